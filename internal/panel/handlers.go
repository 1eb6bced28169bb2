package panel

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/xnbake/internal/export"
	"github.com/Faultbox/xnbake/internal/job"
	"github.com/Faultbox/xnbake/internal/session"
	"github.com/Faultbox/xnbake/pkg/bake"
	"github.com/Faultbox/xnbake/pkg/obj"
	"github.com/Faultbox/xnbake/pkg/xnconf"
)

// ModeInfo describes one bake mode.
type ModeInfo struct {
	Mode   bake.Mode `json:"mode"`
	Key    string    `json:"key"`
	Label  string    `json:"label"`
	Marker string    `json:"marker"`
	Active bool      `json:"active"`
}

func modeInfo(m, active bake.Mode) ModeInfo {
	return ModeInfo{Mode: m, Key: m.Key(), Label: m.Label(), Marker: xnconf.Marker(m), Active: m == active}
}

// FieldInfo describes one field and its current value.
type FieldInfo struct {
	Path   string   `json:"path"`
	Label  string   `json:"label"`
	Kind   string   `json:"kind"`
	Value  string   `json:"value"`
	Min    *float64 `json:"min,omitempty"`
	Max    *float64 `json:"max,omitempty"`
	Tokens []string `json:"tokens,omitempty"`
	Valid  bool     `json:"valid"`
}

func fieldInfo(section string, f bake.Field) FieldInfo {
	info := FieldInfo{
		Path:   section + "." + f.Key,
		Label:  f.Label,
		Kind:   f.Kind.String(),
		Value:  f.String(),
		Tokens: f.Tokens,
		Valid:  f.Valid(),
	}
	if f.Bounds.HasMin {
		v := f.Bounds.Min
		info.Min = &v
	}
	if f.Bounds.HasMax {
		v := f.Bounds.Max
		info.Max = &v
	}
	return info
}

// ValueRequest is the body of PUT /api/fields/*.
type ValueRequest struct {
	Value string `json:"value"`
}

// ModeRequest is the body of PUT /api/mode.
type ModeRequest struct {
	Mode string `json:"mode"`
}

// ExportRequest is the body of POST /api/export/:role.
type ExportRequest struct {
	Source   string   `json:"source"`
	Objects  []string `json:"objects"`
	ZUp      bool     `json:"z_up"`
	Encoding string   `json:"encoding"`
	Scale    float64  `json:"scale"`
	Center   bool     `json:"center"`
}

// OpenDirRequest is the body of POST /api/open-dir. An empty Dir opens
// the directory of the output image.
type OpenDirRequest struct {
	Dir string `json:"dir"`
}

// handleModes lists the bake modes.
func (s *Server) handleModes(c *fiber.Ctx) error {
	s.mu.Lock()
	active := s.session.Settings.Mode
	s.mu.Unlock()

	modes := make([]ModeInfo, 0, len(bake.Modes()))
	for _, m := range bake.Modes() {
		modes = append(modes, modeInfo(m, active))
	}
	return c.JSON(modes)
}

// handleSettings returns the whole session.
func (s *Server) handleSettings(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(s.session.Settings)
}

// handleGetField returns one field ("cavity.rays") or a whole section ("cavity").
func (s *Server) handleGetField(c *fiber.Ctx) error {
	path := c.Params("*")

	s.mu.Lock()
	defer s.mu.Unlock()

	section, _, ok := strings.Cut(path, ".")
	if !ok {
		fields, err := s.session.Settings.Section(section)
		if err != nil {
			return errorJSON(c, err)
		}
		infos := make([]FieldInfo, len(fields))
		for i, f := range fields {
			infos[i] = fieldInfo(section, f)
		}
		return c.JSON(infos)
	}

	f, err := s.session.Settings.Field(path)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fieldInfo(section, f))
}

// handleSetField parses and stores one field value.
func (s *Server) handleSetField(c *fiber.Ctx) error {
	path := c.Params("*")

	var req ValueRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.session.Set(path, req.Value); err != nil {
		return errorJSON(c, err)
	}
	s.persist()

	section, _, _ := strings.Cut(path, ".")
	f, _ := s.session.Settings.Field(path)
	s.events.publish(Event{Type: "field", Path: path, Value: f.String()})
	return c.JSON(fieldInfo(section, f))
}

// handleSetMode selects the active mode.
func (s *Server) handleSetMode(c *fiber.Ctx) error {
	var req ModeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.session.SetMode(req.Mode); err != nil {
		return errorJSON(c, err)
	}
	s.persist()

	mode := s.session.Settings.Mode
	s.events.publish(Event{Type: "mode", Value: mode.String()})
	return c.JSON(modeInfo(mode, mode))
}

// handlePreset merges an hjson preset sent as the request body.
func (s *Server) handlePreset(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.session.ApplyPreset(c.Body()); err != nil {
		return errorJSON(c, err)
	}
	s.persist()

	s.events.publish(Event{Type: "preset"})
	return c.JSON(s.session.Settings)
}

// handleExport writes a source mesh to the role's configured path.
func (s *Server) handleExport(c *fiber.Ctx) error {
	role, err := export.ParseRole(c.Params("role"))
	if err != nil {
		return errorJSON(c, err)
	}

	var req ExportRequest
	if err := c.BodyParser(&req); err != nil || req.Source == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "source mesh required"})
	}

	s.mu.Lock()
	globals := s.session.Settings.Globals
	s.mu.Unlock()

	path, err := s.exporter.Export(globals, role, req.Source, export.Options{
		Objects:  req.Objects,
		ZUp:      req.ZUp,
		Encoding: req.Encoding,
		Scale:    req.Scale,
		Center:   req.Center,
	})
	if err != nil {
		return errorJSON(c, err)
	}

	s.events.publish(Event{Type: "export", Path: string(role), Value: path})
	return c.JSON(fiber.Map{"role": role, "path": path})
}

// handleBake starts xNormal with the current settings.
func (s *Server) handleBake(c *fiber.Ctx) error {
	s.mu.Lock()
	settings := *s.session.Settings
	s.mu.Unlock()

	doc, err := s.baker.Bake(&settings)
	if err != nil {
		return errorJSON(c, err)
	}

	s.events.publish(Event{Type: "bake", Path: doc, Value: settings.Mode.String()})
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"mode":     settings.Mode,
		"document": doc,
	})
}

// handleOpenDir opens the bake directory.
func (s *Server) handleOpenDir(c *fiber.Ctx) error {
	var req OpenDirRequest
	_ = c.BodyParser(&req)

	dir := req.Dir
	if dir == "" {
		s.mu.Lock()
		dir = filepath.Dir(s.session.Settings.Globals.Output)
		s.mu.Unlock()
	}

	if err := s.opener.OpenDir(dir); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"dir": dir})
}

// handleEvents streams session events to a websocket client.
func (s *Server) handleEvents(c *websocket.Conn) {
	ch := s.events.subscribe()
	defer s.events.unsubscribe(ch)

	// Reads only detect the client going away.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case msg := <-ch:
			if err := c.WriteMessage(websocket.TextMessage, msg); err != nil {
				s.log.Debug("event client gone", zap.Error(err))
				return
			}
		case <-done:
			return
		}
	}
}

// errorJSON maps domain errors to HTTP statuses.
func errorJSON(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	body := fiber.Map{"error": err.Error()}

	var (
		verr *job.ValidationError
		lerr *job.LaunchError
		perr *job.PersistenceError
	)
	switch {
	case errors.As(err, &verr):
		status = fiber.StatusUnprocessableEntity
		body["mode"] = verr.Mode
		body["fields"] = verr.Fields
	case errors.As(err, &lerr):
		status = fiber.StatusBadGateway
		body["document"] = lerr.Document
	case errors.As(err, &perr):
		status = fiber.StatusInternalServerError
	case errors.Is(err, bake.ErrUnknownField),
		errors.Is(err, bake.ErrUnknownMode),
		errors.Is(err, export.ErrUnknownRole),
		errors.Is(err, obj.ErrNoSuchGroup):
		status = fiber.StatusNotFound
	case errors.Is(err, bake.ErrOutOfRange),
		errors.Is(err, bake.ErrInvalidToken),
		errors.Is(err, bake.ErrInvalidValue),
		errors.Is(err, session.ErrInvalidPreset):
		status = fiber.StatusUnprocessableEntity
	case errors.Is(err, os.ErrNotExist),
		errors.Is(err, export.ErrUnknownEncoding),
		errors.Is(err, export.ErrInvalidScale),
		errors.Is(err, obj.ErrSyntax),
		errors.Is(err, obj.ErrBadIndex),
		errors.Is(err, obj.ErrDegenerate),
		errors.Is(err, obj.ErrEmptyMesh):
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(body)
}
