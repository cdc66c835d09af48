package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/aedb-backend/internal/http/response"
	"github.com/yungbote/aedb-backend/internal/http/schema"
	"github.com/yungbote/aedb-backend/internal/services"
)

// SpeedHandler serves reels, rolls and speeds.
type SpeedHandler struct {
	speedService services.SpeedService
}

func NewSpeedHandler(speedService services.SpeedService) *SpeedHandler {
	return &SpeedHandler{speedService: speedService}
}

func (sh *SpeedHandler) ListReels(c *gin.Context) {
	reels, err := sh.speedService.ListReels(c.Request.Context())
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, schema.ReelsFromModels(reels))
}

func (sh *SpeedHandler) GetReel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	reel, err := sh.speedService.GetReel(c.Request.Context(), id)
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, schema.ReelFromModel(reel))
}

func (sh *SpeedHandler) CreateReel(c *gin.Context) {
	var req schema.ReelSchema
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondInvalid(c, err)
		return
	}
	reel, err := sh.speedService.CreateReel(c.Request.Context(), req.ToModel())
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondCreated(c, schema.ReelFromModel(reel))
}

func (sh *SpeedHandler) UpdateReel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req schema.ReelSchema
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondInvalid(c, err)
		return
	}
	reel, err := sh.speedService.UpdateReel(c.Request.Context(), id, req.ToModel())
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, schema.ReelFromModel(reel))
}

// DeleteReel removes the reel with its rolls and their speeds.
func (sh *SpeedHandler) DeleteReel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := sh.speedService.DeleteReel(c.Request.Context(), id); err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondNoContent(c)
}

func (sh *SpeedHandler) ListReelRolls(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	rolls, err := sh.speedService.ListReelRolls(c.Request.Context(), id)
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, schema.RollsFromModels(rolls))
}

func (sh *SpeedHandler) ListRolls(c *gin.Context) {
	rolls, err := sh.speedService.ListRolls(c.Request.Context())
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, schema.RollsFromModels(rolls))
}

func (sh *SpeedHandler) GetRoll(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	roll, err := sh.speedService.GetRoll(c.Request.Context(), id)
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, schema.RollFromModel(roll))
}

func (sh *SpeedHandler) CreateRoll(c *gin.Context) {
	var req schema.RollSchema
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondInvalid(c, err)
		return
	}
	roll, err := sh.speedService.CreateRoll(c.Request.Context(), req.ToModel())
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondCreated(c, schema.RollFromModel(roll))
}

func (sh *SpeedHandler) UpdateRoll(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req schema.RollSchema
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondInvalid(c, err)
		return
	}
	roll, err := sh.speedService.UpdateRoll(c.Request.Context(), id, req.ToModel())
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, schema.RollFromModel(roll))
}

func (sh *SpeedHandler) DeleteRoll(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := sh.speedService.DeleteRoll(c.Request.Context(), id); err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondNoContent(c)
}

func (sh *SpeedHandler) ListRollSpeeds(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	speeds, err := sh.speedService.ListRollSpeeds(c.Request.Context(), id)
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, schema.SpeedsFromModels(speeds))
}

func (sh *SpeedHandler) ListSpeeds(c *gin.Context) {
	speeds, err := sh.speedService.ListSpeeds(c.Request.Context())
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, schema.SpeedsFromModels(speeds))
}

func (sh *SpeedHandler) GetSpeed(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	speed, err := sh.speedService.GetSpeed(c.Request.Context(), id)
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, schema.SpeedFromModel(speed))
}

func (sh *SpeedHandler) CreateSpeed(c *gin.Context) {
	var req schema.SpeedSchema
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondInvalid(c, err)
		return
	}
	speed, err := sh.speedService.CreateSpeed(c.Request.Context(), req.ToModel())
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondCreated(c, schema.SpeedFromModel(speed))
}

func (sh *SpeedHandler) UpdateSpeed(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req schema.SpeedSchema
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondInvalid(c, err)
		return
	}
	speed, err := sh.speedService.UpdateSpeed(c.Request.Context(), id, req.ToModel())
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, schema.SpeedFromModel(speed))
}

func (sh *SpeedHandler) DeleteSpeed(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := sh.speedService.DeleteSpeed(c.Request.Context(), id); err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondNoContent(c)
}
