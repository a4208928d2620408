package main

import (
	"errors"

	"github.com/meikuraledutech/flow"
	"github.com/meikuraledutech/flow/forms"
	"github.com/meikuraledutech/flow/render"
	"github.com/gofiber/fiber/v3"
)

type triggerRequest struct {
	Type      string         `json:"type"`
	Platforms []string       `json:"platforms"`
	Position  *flow.Position `json:"position"`
}

type replyRequest struct {
	AIActive bool           `json:"isAiActive"`
	Model    string         `json:"model"`
	Input    string         `json:"input"`
	Position *flow.Position `json:"position"`
}

type emailRequest struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject"`
	Message  string         `json:"message"`
	Position *flow.Position `json:"position"`
}

type templateNodeRequest struct {
	TemplateID string         `json:"templateId"`
	Position   *flow.Position `json:"position"`
}

type templateRequest struct {
	Text  string  `json:"text"`
	Image *string `json:"image"`
}

// formError maps a form/document error to its HTTP status. Validation
// failures are 422 with the blocking-notice message the dialogs show.
func formError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, flow.ErrNodeNotFound):
		return c.Status(404).JSON(fiber.Map{"error": "node not found"})
	case errors.Is(err, flow.ErrEditInProgress):
		return c.Status(409).JSON(fiber.Map{"error": "another edit is in progress"})
	case errors.Is(err, flow.ErrDuplicateNode):
		return c.Status(409).JSON(fiber.Map{"error": "duplicate node id"})
	case errors.Is(err, forms.ErrOptionRequired),
		errors.Is(err, forms.ErrUnknownOption),
		errors.Is(err, forms.ErrInputRequired),
		errors.Is(err, forms.ErrModelRequired),
		errors.Is(err, forms.ErrFieldsMissing),
		errors.Is(err, forms.ErrInvalidEmail),
		errors.Is(err, forms.ErrTemplateRequired),
		errors.Is(err, forms.ErrTextRequired),
		errors.Is(err, forms.ErrUnknownTemplate),
		errors.Is(err, forms.ErrPlatformRequired),
		errors.Is(err, forms.ErrWrongForm):
		return c.Status(422).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
}

func newApp(doc *flow.Document, sessions *flow.Sessions, registry *render.Registry, templates flow.TemplateStore) *fiber.App {
	app := fiber.New()

	// ── Document ──────────────────────────────────────────────────────
	app.Get("/flow", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"nodes": doc.Nodes(),
			"edges": doc.Edges(),
		})
	})

	app.Get("/flow/render", func(c fiber.Ctx) error {
		summaries, err := registry.Summaries(doc.Nodes())
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(summaries)
	})

	app.Get("/catalog", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"triggers":  flow.TriggerOptions,
			"actions":   flow.ActionOptions,
			"platforms": flow.Platforms,
			"ai":        flow.AIModels,
		})
	})

	// ── Node creation ─────────────────────────────────────────────────
	app.Post("/flow/nodes/trigger", func(c fiber.Ctx) error {
		var req triggerRequest
		if err := c.Bind().JSON(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}

		form := forms.NewTriggerForm(doc, sessions)
		form.Open()
		if err := applyTrigger(form, req); err != nil {
			return formError(c, err)
		}
		id, err := form.Submit()
		if err != nil {
			return formError(c, err)
		}
		return c.Status(201).JSON(fiber.Map{"id": id})
	})

	app.Post("/flow/nodes/reply", func(c fiber.Ctx) error {
		var req replyRequest
		if err := c.Bind().JSON(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}

		form := forms.NewReplyForm(doc, sessions)
		form.Open()
		if err := form.Select("Reply"); err != nil {
			return formError(c, err)
		}
		if err := applyReply(form, req); err != nil {
			return formError(c, err)
		}
		id, err := form.Submit()
		if err != nil {
			return formError(c, err)
		}
		return c.Status(201).JSON(fiber.Map{"id": id})
	})

	app.Post("/flow/nodes/email", func(c fiber.Ctx) error {
		var req emailRequest
		if err := c.Bind().JSON(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}

		form := forms.NewEmailForm(doc, sessions)
		form.Open()
		if err := form.Select("Email"); err != nil {
			return formError(c, err)
		}
		applyEmail(form, req)
		id, err := form.Submit()
		if err != nil {
			return formError(c, err)
		}
		return c.Status(201).JSON(fiber.Map{"id": id})
	})

	app.Post("/flow/nodes/template", func(c fiber.Ctx) error {
		var req templateNodeRequest
		if err := c.Bind().JSON(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}

		form := forms.NewTemplateForm(doc, sessions, templates)
		form.Open()
		if err := form.Select("Template"); err != nil {
			return formError(c, err)
		}
		if req.Position != nil {
			form.SetPosition(*req.Position)
		}
		if req.TemplateID != "" {
			if err := form.SelectTemplate(c.Context(), req.TemplateID); err != nil {
				return formError(c, err)
			}
		}
		id, err := form.Submit()
		if err != nil {
			return formError(c, err)
		}
		return c.Status(201).JSON(fiber.Map{"id": id})
	})

	// ── Node editing ──────────────────────────────────────────────────
	app.Post("/flow/nodes/:id/edit", func(c fiber.Ctx) error {
		node := doc.Node(c.Params("id"))
		if node == nil {
			return c.Status(404).JSON(fiber.Map{"error": "node not found"})
		}
		sess, err := render.EditRequest(*node)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		if err := sessions.Checkout(sess); err != nil {
			return formError(c, err)
		}
		return c.JSON(sess)
	})

	app.Get("/flow/session", func(c fiber.Ctx) error {
		sess := sessions.Active()
		if sess == nil {
			return c.Status(404).JSON(fiber.Map{"error": "no active edit session"})
		}
		return c.JSON(sess)
	})

	app.Delete("/flow/session", func(c fiber.Ctx) error {
		sessions.Clear()
		return c.SendStatus(204)
	})

	app.Put("/flow/nodes/:id", func(c fiber.Ctx) error {
		node := doc.Node(c.Params("id"))
		if node == nil {
			return c.Status(404).JSON(fiber.Map{"error": "node not found"})
		}

		sess, err := render.EditRequest(*node)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		if err := sessions.Checkout(sess); err != nil {
			return formError(c, err)
		}

		id, err := updateNode(c, doc, sessions, templates, sess)
		if err != nil {
			return formError(c, err)
		}
		return c.JSON(fiber.Map{"id": id})
	})

	app.Delete("/flow/nodes/:id", func(c fiber.Ctx) error {
		doc.RemoveNode(c.Params("id"))
		sessions.Release(c.Params("id"))
		return c.SendStatus(204)
	})

	app.Put("/flow/nodes/:id/position", func(c fiber.Ctx) error {
		var pos flow.Position
		if err := c.Bind().JSON(&pos); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		if err := doc.MoveNode(c.Params("id"), pos); err != nil {
			return formError(c, err)
		}
		return c.SendStatus(204)
	})

	// ── Templates ─────────────────────────────────────────────────────
	app.Get("/templates", func(c fiber.Ctx) error {
		list, err := templates.List(c.Context())
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(list)
	})

	app.Post("/templates", func(c fiber.Ctx) error {
		var req templateRequest
		if err := c.Bind().JSON(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		if req.Text == "" {
			return formError(c, forms.ErrTextRequired)
		}

		t := flow.Template{Text: req.Text, Image: req.Image}
		id, err := templates.Append(c.Context(), &t)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(201).JSON(fiber.Map{"id": id})
	})

	app.Get("/templates/:id", func(c fiber.Ctx) error {
		t, err := templates.Get(c.Context(), c.Params("id"))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		if t == nil {
			return c.Status(404).JSON(fiber.Map{"error": "template not found"})
		}
		return c.JSON(t)
	})

	return app
}

func applyTrigger(form *forms.TriggerForm, req triggerRequest) error {
	if err := form.Select(req.Type); err != nil {
		return err
	}
	if req.Position != nil {
		form.SetPosition(*req.Position)
	}
	for _, p := range req.Platforms {
		if err := form.TogglePlatform(p); err != nil {
			return err
		}
	}
	return nil
}

func applyReply(form *forms.ReplyForm, req replyRequest) error {
	if req.Position != nil {
		form.SetPosition(*req.Position)
	}
	form.SetAIActive(req.AIActive)
	form.SetInput(req.Input)
	if req.Model != "" {
		return form.SelectModel(req.Model)
	}
	return nil
}

func applyEmail(form *forms.EmailForm, req emailRequest) {
	if req.Position != nil {
		form.SetPosition(*req.Position)
	}
	form.SetTo(req.To)
	form.SetSubject(req.Subject)
	form.SetMessage(req.Message)
}

// updateNode routes a checked-out session back to its owning form, applies
// the request body and resubmits. The payload variant can't change across
// an update; the body must match the node's current form.
func updateNode(c fiber.Ctx, doc *flow.Document, sessions *flow.Sessions, templates flow.TemplateStore, sess flow.EditSession) (string, error) {
	switch sess.Data.(type) {
	case flow.TriggerData:
		var req triggerRequest
		if err := c.Bind().JSON(&req); err != nil {
			return "", forms.ErrWrongForm
		}
		form := forms.NewTriggerForm(doc, sessions)
		if err := form.Hydrate(&sess); err != nil {
			return "", err
		}
		if req.Type != "" {
			if err := form.Select(req.Type); err != nil {
				return "", err
			}
		}
		if len(req.Platforms) > 0 {
			form.ResetPlatforms()
			for _, p := range req.Platforms {
				if err := form.TogglePlatform(p); err != nil {
					return "", err
				}
			}
		}
		return form.Submit()

	case flow.ReplyData:
		var req replyRequest
		if err := c.Bind().JSON(&req); err != nil {
			return "", forms.ErrWrongForm
		}
		form := forms.NewReplyForm(doc, sessions)
		if err := form.Hydrate(&sess); err != nil {
			return "", err
		}
		if err := applyReply(form, req); err != nil {
			return "", err
		}
		return form.Submit()

	case flow.EmailData:
		var req emailRequest
		if err := c.Bind().JSON(&req); err != nil {
			return "", forms.ErrWrongForm
		}
		form := forms.NewEmailForm(doc, sessions)
		if err := form.Hydrate(&sess); err != nil {
			return "", err
		}
		applyEmail(form, req)
		return form.Submit()

	case flow.TemplateData:
		var req templateNodeRequest
		if err := c.Bind().JSON(&req); err != nil {
			return "", forms.ErrWrongForm
		}
		form := forms.NewTemplateForm(doc, sessions, templates)
		if err := form.Hydrate(&sess); err != nil {
			return "", err
		}
		if req.TemplateID != "" {
			if err := form.SelectTemplate(c.Context(), req.TemplateID); err != nil {
				return "", err
			}
		}
		return form.Submit()
	}

	return "", flow.ErrUnknownDataType
}
