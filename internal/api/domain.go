package api

import (
	"github.com/JaimeStill/design-lab/internal/accesslog"
	"github.com/JaimeStill/design-lab/internal/gallery"
	"github.com/JaimeStill/design-lab/internal/home"
	"github.com/JaimeStill/design-lab/internal/notices"
	"github.com/JaimeStill/design-lab/internal/quicklinks"
	"github.com/JaimeStill/design-lab/internal/schedules"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Gallery    gallery.System
	Notices    notices.System
	Schedules  schedules.System
	QuickLinks quicklinks.System
	Home       home.System
	AccessLogs accesslog.System
}

// NewDomain creates all domain systems from the API runtime. Each system
// falls back to the built-in catalog when the database is disabled.
func NewDomain(runtime *Runtime) *Domain {
	db := runtime.Database.Connection()

	return &Domain{
		Gallery:    gallery.New(db, runtime.Logger),
		Notices:    notices.New(db, runtime.Logger),
		Schedules:  schedules.New(db, runtime.Logger),
		QuickLinks: quicklinks.New(db, runtime.Logger),
		Home:       home.New(db, runtime.Logger),
		AccessLogs: accesslog.New(db, runtime.Logger),
	}
}
