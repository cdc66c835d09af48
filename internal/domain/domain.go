package domain

import (
	"github.com/yungbote/aedb-backend/internal/domain/manuals"
	"github.com/yungbote/aedb-backend/internal/domain/posts"
	"github.com/yungbote/aedb-backend/internal/domain/speed"
	"github.com/yungbote/aedb-backend/internal/domain/user"
)

type (
	User = user.User
	Post = posts.Post

	Category = manuals.Category
	Group    = manuals.Group
	Manual   = manuals.Manual

	Reel  = speed.Reel
	Roll  = speed.Roll
	Speed = speed.Speed
)

const DefaultLogoURL = manuals.DefaultLogoURL
