// Package panel serves a local HTTP control panel over a bake session.
package panel

import (
	"net"
	"slices"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/xnbake/internal/export"
	"github.com/Faultbox/xnbake/internal/session"
	"github.com/Faultbox/xnbake/pkg/bake"
)

// Baker runs a bake for the given settings and returns the document path.
type Baker interface {
	Bake(s *bake.Settings) (string, error)
}

// Exporter writes a source mesh to a role's path.
type Exporter interface {
	Export(g bake.Globals, role export.Role, source string, opts export.Options) (string, error)
}

// DirOpener shows a directory in the platform file browser.
type DirOpener interface {
	OpenDir(dir string) error
}

// Deps are the collaborators the panel drives.
type Deps struct {
	Session  *session.Session
	Baker    Baker
	Exporter Exporter
	Opener   DirOpener
	Log      *zap.Logger
}

// Server is the control panel server.
type Server struct {
	app  *fiber.App
	addr string

	// Handlers run concurrently; mu guards the session.
	mu      sync.Mutex
	session *session.Session

	baker    Baker
	exporter Exporter
	opener   DirOpener
	events   *hub
	log      *zap.Logger
}

// New creates a control panel server listening on addr.
func New(addr string, d Deps) *Server {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}

	s := &Server{
		addr:     addr,
		session:  d.Session,
		baker:    d.Baker,
		exporter: d.Exporter,
		opener:   d.Opener,
		events:   newHub(),
		log:      log.Named("panel"),
	}

	app := fiber.New(fiber.Config{
		AppName:               "xnbake",
		DisableStartupMessage: true,
	})

	// Browsers may only call the panel from its own origin.
	origins := localOrigins(addr)
	app.Use(allowOrigins(origins))
	if len(origins) > 0 {
		app.Use(cors.New(cors.Config{
			AllowOrigins: strings.Join(origins, ","),
		}))
	}

	api := app.Group("/api")
	api.Get("/modes", s.handleModes)
	api.Get("/settings", s.handleSettings)
	api.Get("/fields/*", s.handleGetField)
	api.Put("/fields/*", s.handleSetField)
	api.Put("/mode", s.handleSetMode)
	api.Post("/preset", s.handlePreset)
	api.Post("/export/:role", s.handleExport)
	api.Post("/bake", s.handleBake)
	api.Post("/open-dir", s.handleOpenDir)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/events", websocket.New(s.handleEvents))

	s.app = app
	return s
}

// localOrigins returns the browser origins of a panel listening on addr.
// A wildcard host is reachable as localhost and 127.0.0.1.
func localOrigins(addr string) []string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return nil
	}

	var hosts []string
	switch host {
	case "", "0.0.0.0", "::", "localhost", "127.0.0.1":
		hosts = []string{"localhost", "127.0.0.1"}
	default:
		hosts = []string{host}
	}

	origins := make([]string, len(hosts))
	for i, h := range hosts {
		origins[i] = "http://" + net.JoinHostPort(h, port)
	}
	return origins
}

// allowOrigins rejects requests whose Origin header is not one of origins.
// Requests without an Origin header (curl, the CLI) pass.
func allowOrigins(origins []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		origin := c.Get(fiber.HeaderOrigin)
		if origin == "" || slices.Contains(origins, origin) {
			return c.Next()
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "origin not allowed"})
	}
}

// Listen serves until Shutdown is called.
func (s *Server) Listen() error {
	s.log.Info("control panel listening", zap.String("addr", "http://"+s.addr))
	return s.app.Listen(s.addr)
}

// Shutdown stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// persist saves the session after a change. A failed save is logged; the
// in-memory change stands.
func (s *Server) persist() {
	if s.session.Path() == "" {
		return
	}
	if err := s.session.Save(); err != nil {
		s.log.Warn("failed to save session", zap.Error(err))
	}
}
