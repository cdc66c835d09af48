package ctxutil

import (
	"context"
	"testing"
)

func TestRequestDataRoundTrip(t *testing.T) {
	ctx := WithRequestData(context.Background(), &RequestData{UserID: 7, TokenString: "tok"})
	if got := UserID(ctx); got != 7 {
		t.Fatalf("UserID: want=7 got=%d", got)
	}
	if got := UserID(context.Background()); got != 0 {
		t.Fatalf("anonymous UserID: want=0 got=%d", got)
	}
	if GetTraceData(ctx) != nil {
		t.Fatal("expected no trace data")
	}
}
