package schema

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	types "github.com/yungbote/aedb-backend/internal/domain"
)

func TestManualFromModelDerivesCover(t *testing.T) {
	out := ManualFromModel(&types.Manual{ID: 4, Title: "Manual A", FileURL: "/media/manuals/a.pdf", CategoryID: 1, GroupID: 2})
	assert.Equal(t, "/media/manuals/a.png", out.CoverImageURL)
	assert.Equal(t, uint(2), out.GroupID)
}

func TestManualToModelIgnoresCover(t *testing.T) {
	in := ManualSchema{ID: 9, Title: " Manual A ", FileURL: "/f/a.pdf", CoverImageURL: "/elsewhere.png", GroupID: 2}
	m := in.ToModel()
	assert.Equal(t, uint(0), m.ID)
	assert.Equal(t, "Manual A", m.Title)
	assert.Equal(t, "/f/a.png", m.CoverImageURL())
}

func TestValidation(t *testing.T) {
	v := binding.Validator
	cases := []struct {
		name string
		obj  any
		ok   bool
	}{
		{"category", CategorySchema{Name: "Pumps"}, true},
		{"category without name", CategorySchema{LogoURL: "/l.png"}, false},
		{"group without category", GroupSchema{Name: "Hydraulic"}, false},
		{"manual title too long", ManualSchema{Title: string(make([]byte, 201)), FileURL: "/f", GroupID: 1}, false},
		{"register", RegisterSchema{Email: "a@example.com", Name: "A", Password: "secret-pass"}, true},
		{"register bad email", RegisterSchema{Email: "nope", Name: "A", Password: "secret-pass"}, false},
		{"register short password", RegisterSchema{Email: "a@example.com", Name: "A", Password: "short"}, false},
		{"speed", SpeedSchema{RollID: 1, Tspd: 120}, true},
		{"speed without roll", SpeedSchema{Tspd: 120}, false},
		{"speed negative target", SpeedSchema{RollID: 1, Tspd: -1}, false},
		{"page over max", Page{Limit: 101}, false},
	}
	for _, tc := range cases {
		err := v.ValidateStruct(tc.obj)
		if tc.ok && err != nil {
			t.Fatalf("%s: want=valid got=%v", tc.name, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("%s: want=invalid got=valid", tc.name)
		}
	}
}

func TestSpeedFromModelUsesMoscowTime(t *testing.T) {
	at := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	out := SpeedFromModel(&types.Speed{ID: 1, RollID: 2, TargetSpeed: 80, CreatedAt: at, UpdatedAt: at})
	require.Equal(t, 80, out.Tspd)
	_, offset := out.CreatedAt.Zone()
	assert.Equal(t, 3*60*60, offset)
	assert.True(t, out.CreatedAt.Equal(at))
}

func TestRegisterNormalized(t *testing.T) {
	in := RegisterSchema{Email: " A@Example.COM ", Name: " Ann "}.Normalized()
	assert.Equal(t, "a@example.com", in.Email)
	assert.Equal(t, "Ann", in.Name)
}
