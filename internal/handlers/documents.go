package handlers

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/medconnect/backend/internal/middleware"
	"github.com/medconnect/backend/internal/models"
	"github.com/medconnect/backend/internal/store"
	"github.com/medconnect/backend/pkg/logger"
	"github.com/medconnect/backend/pkg/utils"
)

type DocumentsHandler struct {
	Store     *store.Store
	UploadDir string
}

func NewDocumentsHandler(s *store.Store, uploadDir string) *DocumentsHandler {
	return &DocumentsHandler{Store: s, UploadDir: uploadDir}
}

type documentView struct {
	models.Document
	Icon       string            `json:"icon"`
	TypeLabel  labelView         `json:"typeLabel"`
	SharedWith []participantView `json:"sharedWith"`
}

func (h *DocumentsHandler) buildView(document models.Document) documentView {
	display := displayForFileType(document.FileType)
	view := documentView{
		Document:  document,
		Icon:      display.Icon,
		TypeLabel: labelView{Name: string(document.FileType), Color: display.Color},
	}

	sharedUsers := h.Store.GetDocumentSharedUsers(document.ID)
	view.SharedWith = make([]participantView, 0, len(sharedUsers))
	for _, user := range sharedUsers {
		view.SharedWith = append(view.SharedWith, participantView{
			ID:         user.ID,
			Initials:   user.Initials,
			ColorClass: colorClassForSpecialty(user.Specialty),
		})
	}

	return view
}

func (h *DocumentsHandler) List(c *fiber.Ctx) error {
	filter := c.Query("filter")
	searchTerm := c.Query("searchTerm")

	viewerID := 0
	if authUser := middleware.GetAuthUser(c); authUser != nil {
		viewerID = authUser.ID
	}

	documents := h.Store.GetDocuments(filter, searchTerm, viewerID)

	views := make([]documentView, 0, len(documents))
	for _, document := range documents {
		views = append(views, h.buildView(document))
	}

	return utils.Success(c, fiber.StatusOK, views)
}

// Recent returns the three most recently updated documents.
func (h *DocumentsHandler) Recent(c *fiber.Ctx) error {
	documents := h.Store.GetDocuments("", "", 0)
	sort.Slice(documents, func(i, j int) bool {
		return documents[i].UpdatedAt.After(documents[j].UpdatedAt)
	})
	if len(documents) > 3 {
		documents = documents[:3]
	}

	views := make([]documentView, 0, len(documents))
	for _, document := range documents {
		views = append(views, h.buildView(document))
	}

	return utils.Success(c, fiber.StatusOK, views)
}

// Upload stores the multipart file on local disk under a
// timestamp-randomized name and records the document under its original
// filename, with the type inferred from the extension.
func (h *DocumentsHandler) Upload(c *fiber.Ctx) error {
	authUser := middleware.GetAuthUser(c)
	if authUser == nil {
		return utils.Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "No file uploaded")
	}

	if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, "failed preparing upload directory")
	}

	storedName := fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), uuid.NewString(), filepath.Base(file.Filename))
	if err := c.SaveFile(file, filepath.Join(h.UploadDir, storedName)); err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, "failed storing file")
	}

	document := h.Store.CreateDocument(models.Document{
		Filename: file.Filename,
		FileType: fileTypeFromName(file.Filename),
		OwnerID:  authUser.ID,
		TimeAgo:  "Just now",
	})

	logger.InfoWithUser(strconv.Itoa(authUser.ID), "document_uploaded", map[string]interface{}{
		"document_id": document.ID,
		"filename":    document.Filename,
		"file_type":   string(document.FileType),
		"size":        file.Size,
	})

	return utils.Success(c, fiber.StatusCreated, document)
}

type shareDocumentRequest struct {
	UserIDs []int `json:"userIds"`
}

func (h *DocumentsHandler) Share(c *fiber.Ctx) error {
	documentID, err := parseID(c.Params("id"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid document id")
	}

	var req shareDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if len(req.UserIDs) == 0 {
		return utils.Error(c, fiber.StatusBadRequest, "UserIds array is required")
	}

	h.Store.ShareDocument(documentID, req.UserIDs)
	return utils.Success(c, fiber.StatusOK, fiber.Map{"message": "document shared"})
}

// Download regenerates a placeholder file for the document (the originally
// uploaded bytes are not retained) and removes it once the response is
// sent.
func (h *DocumentsHandler) Download(c *fiber.Ctx) error {
	documentID, err := parseID(c.Params("id"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid document id")
	}

	document, ok := h.Store.GetDocument(documentID)
	if !ok {
		return utils.Error(c, fiber.StatusNotFound, "Document not found")
	}

	if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, "failed preparing download")
	}

	content := fmt.Sprintf("This is a sample %s file for %s", document.FileType, document.Filename)
	tempPath := filepath.Join(h.UploadDir, fmt.Sprintf("sample-%d.txt", document.ID))
	if err := os.WriteFile(tempPath, []byte(content), 0o644); err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, "failed preparing download")
	}
	defer os.Remove(tempPath)

	return c.Download(tempPath, document.Filename)
}
