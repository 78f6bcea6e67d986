package http

import (
	"bytes"
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"resumeforge/internal/model"
	"resumeforge/internal/quality"
	"resumeforge/internal/render"
	"resumeforge/internal/session"
)

// PDFRenderer delegates print/PDF production to the host environment.
type PDFRenderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

type Handler struct {
	session  *session.Session
	registry *render.Registry
	pdf      PDFRenderer
	log      zerolog.Logger
}

func NewHandler(s *session.Session, reg *render.Registry, pdf PDFRenderer, log zerolog.Logger) *Handler {
	return &Handler{session: s, registry: reg, pdf: pdf, log: log}
}

// Register wires all routes onto the app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/templates", h.Templates)

	app.Get("/session", h.GetSession)
	app.Delete("/session", h.ResetSession)
	app.Put("/session/personal", h.PutPersonal)
	app.Put("/session/summary", h.PutSummary)
	app.Put("/session/section-order", h.PutSectionOrder)
	app.Put("/session/customization", h.PutCustomization)

	app.Post("/session/experience", h.AddExperience)
	app.Put("/session/experience/:id", h.UpdateExperience)
	app.Delete("/session/experience/:id", h.RemoveExperience)
	app.Post("/session/education", h.AddEducation)
	app.Put("/session/education/:id", h.UpdateEducation)
	app.Delete("/session/education/:id", h.RemoveEducation)
	app.Post("/session/projects", h.AddProject)
	app.Put("/session/projects/:id", h.UpdateProject)
	app.Delete("/session/projects/:id", h.RemoveProject)
	app.Post("/session/skills", h.AddSkill)
	app.Put("/session/skills/:id", h.UpdateSkill)
	app.Delete("/session/skills/:id", h.RemoveSkill)
	app.Post("/session/achievements", h.AddAchievement)
	app.Put("/session/achievements/:id", h.UpdateAchievement)
	app.Delete("/session/achievements/:id", h.RemoveAchievement)

	app.Get("/session/quality", h.Quality)
	app.Get("/session/preview", h.Preview)
	app.Get("/session/preview.pdf", h.PreviewPDF)
	app.Get("/session/export", h.Export)
	app.Post("/session/import", h.Import)
}

func (h *Handler) Templates(c *fiber.Ctx) error {
	return c.JSON(render.TemplateCatalog)
}

func (h *Handler) GetSession(c *fiber.Ctx) error {
	return c.JSON(h.session.State())
}

func (h *Handler) ResetSession(c *fiber.Ctx) error {
	h.session.Reset(c.Context())
	return c.JSON(h.session.State())
}

func (h *Handler) PutPersonal(c *fiber.Ctx) error {
	var p model.PersonalInfo
	if err := c.BodyParser(&p); err != nil {
		return badRequest(c, "invalid payload")
	}
	h.session.SetPersonalInfo(p)
	return h.respondQuality(c)
}

func (h *Handler) PutSummary(c *fiber.Ctx) error {
	var body struct {
		Summary string `json:"summary"`
	}
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid payload")
	}
	h.session.SetSummary(body.Summary)
	return h.respondQuality(c)
}

func (h *Handler) PutSectionOrder(c *fiber.Ctx) error {
	var body struct {
		SectionOrder []string `json:"sectionOrder"`
	}
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid payload")
	}
	h.session.SetSectionOrder(body.SectionOrder)
	return h.respondQuality(c)
}

func (h *Handler) PutCustomization(c *fiber.Ctx) error {
	var cs model.CustomizationSettings
	if err := c.BodyParser(&cs); err != nil {
		return badRequest(c, "invalid payload")
	}
	h.session.SetCustomization(cs)
	return c.JSON(h.session.Customization())
}

func (h *Handler) AddExperience(c *fiber.Ctx) error {
	var e model.Experience
	if err := c.BodyParser(&e); err != nil {
		return badRequest(c, "invalid payload")
	}
	return c.Status(fiber.StatusCreated).JSON(h.session.AddExperience(e))
}

func (h *Handler) UpdateExperience(c *fiber.Ctx) error {
	var e model.Experience
	if err := c.BodyParser(&e); err != nil {
		return badRequest(c, "invalid payload")
	}
	e.ID = c.Params("id")
	if err := h.session.UpdateExperience(e); err != nil {
		return notFound(c, err)
	}
	return c.JSON(e)
}

func (h *Handler) RemoveExperience(c *fiber.Ctx) error {
	h.session.RemoveExperience(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) AddEducation(c *fiber.Ctx) error {
	var e model.Education
	if err := c.BodyParser(&e); err != nil {
		return badRequest(c, "invalid payload")
	}
	return c.Status(fiber.StatusCreated).JSON(h.session.AddEducation(e))
}

func (h *Handler) UpdateEducation(c *fiber.Ctx) error {
	var e model.Education
	if err := c.BodyParser(&e); err != nil {
		return badRequest(c, "invalid payload")
	}
	e.ID = c.Params("id")
	if err := h.session.UpdateEducation(e); err != nil {
		return notFound(c, err)
	}
	return c.JSON(e)
}

func (h *Handler) RemoveEducation(c *fiber.Ctx) error {
	h.session.RemoveEducation(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) AddProject(c *fiber.Ctx) error {
	var p model.Project
	if err := c.BodyParser(&p); err != nil {
		return badRequest(c, "invalid payload")
	}
	return c.Status(fiber.StatusCreated).JSON(h.session.AddProject(p))
}

func (h *Handler) UpdateProject(c *fiber.Ctx) error {
	var p model.Project
	if err := c.BodyParser(&p); err != nil {
		return badRequest(c, "invalid payload")
	}
	p.ID = c.Params("id")
	if err := h.session.UpdateProject(p); err != nil {
		return notFound(c, err)
	}
	return c.JSON(p)
}

func (h *Handler) RemoveProject(c *fiber.Ctx) error {
	h.session.RemoveProject(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) AddSkill(c *fiber.Ctx) error {
	var g model.Skill
	if err := c.BodyParser(&g); err != nil {
		return badRequest(c, "invalid payload")
	}
	return c.Status(fiber.StatusCreated).JSON(h.session.AddSkill(g))
}

func (h *Handler) UpdateSkill(c *fiber.Ctx) error {
	var g model.Skill
	if err := c.BodyParser(&g); err != nil {
		return badRequest(c, "invalid payload")
	}
	g.ID = c.Params("id")
	if err := h.session.UpdateSkill(g); err != nil {
		return notFound(c, err)
	}
	return c.JSON(g)
}

func (h *Handler) RemoveSkill(c *fiber.Ctx) error {
	h.session.RemoveSkill(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) AddAchievement(c *fiber.Ctx) error {
	var a model.Achievement
	if err := c.BodyParser(&a); err != nil {
		return badRequest(c, "invalid payload")
	}
	return c.Status(fiber.StatusCreated).JSON(h.session.AddAchievement(a))
}

func (h *Handler) UpdateAchievement(c *fiber.Ctx) error {
	var a model.Achievement
	if err := c.BodyParser(&a); err != nil {
		return badRequest(c, "invalid payload")
	}
	a.ID = c.Params("id")
	if err := h.session.UpdateAchievement(a); err != nil {
		return notFound(c, err)
	}
	return c.JSON(a)
}

func (h *Handler) RemoveAchievement(c *fiber.Ctx) error {
	h.session.RemoveAchievement(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

// Quality recomputes the validation report and page estimate for the
// current data. Both are pure functions of the session state.
func (h *Handler) Quality(c *fiber.Ctx) error {
	return h.respondQuality(c)
}

func (h *Handler) respondQuality(c *fiber.Ctx) error {
	data := h.session.Data()
	report := quality.Validate(data)
	return c.JSON(fiber.Map{
		"quality": report,
		"pages":   quality.EstimatePages(data),
	})
}

func (h *Handler) Preview(c *fiber.Ctx) error {
	doc := h.registry.Render(h.session.Data(), h.session.Customization())
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(render.HTML(doc))
}

func (h *Handler) PreviewPDF(c *fiber.Ctx) error {
	doc := h.registry.Render(h.session.Data(), h.session.Customization())
	pdf, err := h.pdf.RenderHTMLToPDF(c.Context(), render.HTML(doc))
	if err != nil {
		h.log.Error().Err(err).Msg("pdf export failed")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "pdf export failed"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdf)
}

func (h *Handler) Export(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.session.Export(&buf); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "export failed"})
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+h.session.ExportFilename()+`"`)
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(buf.Bytes())
}

func (h *Handler) Import(c *fiber.Ctx) error {
	if err := h.session.Import(c.Body()); err != nil {
		return badRequest(c, err.Error())
	}
	return c.JSON(h.session.State())
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func notFound(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
}
