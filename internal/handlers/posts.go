package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/medconnect/backend/internal/middleware"
	"github.com/medconnect/backend/internal/models"
	"github.com/medconnect/backend/internal/store"
	"github.com/medconnect/backend/pkg/utils"
)

type PostsHandler struct {
	Store *store.Store
}

func NewPostsHandler(s *store.Store) *PostsHandler {
	return &PostsHandler{Store: s}
}

type postView struct {
	models.Post
	Author       *models.User      `json:"author"`
	Category     labelView         `json:"category"`
	DiscussCount int               `json:"discussCount"`
	Participants []participantView `json:"participants"`
	Saved        bool              `json:"saved"`
}

// List returns the feed with denormalized author, category and participant
// data. Missing references are masked with fallback labels rather than
// failing the request.
func (h *PostsHandler) List(c *fiber.Ctx) error {
	filter := c.Query("filter")
	searchTerm := c.Query("searchTerm")
	categoryID := c.Query("categoryId")

	viewerID := 0
	if authUser := middleware.GetAuthUser(c); authUser != nil {
		viewerID = authUser.ID
	}

	posts := h.Store.GetPosts(filter, searchTerm, categoryID, viewerID)

	views := make([]postView, 0, len(posts))
	for _, post := range posts {
		view := postView{
			Post:     post,
			Category: labelView{Name: "Unknown", Color: "gray"},
		}

		if author, ok := h.Store.GetUser(post.AuthorID); ok {
			view.Author = &author
		}
		if category, ok := h.Store.GetCategory(post.CategoryID); ok {
			view.Category = labelView{Name: category.Name, Color: category.Color}
		}

		participants := h.Store.GetPostParticipants(post.ID)
		view.DiscussCount = len(participants)
		view.Participants = make([]participantView, 0, len(participants))
		for _, participant := range participants {
			view.Participants = append(view.Participants, participantView{
				ID:         participant.ID,
				Initials:   participant.Initials,
				ColorClass: colorClassForSpecialty(participant.Specialty),
			})
		}

		if viewerID != 0 {
			view.Saved = h.Store.IsPostSaved(post.ID, viewerID)
		}

		views = append(views, view)
	}

	return utils.Success(c, fiber.StatusOK, views)
}

type createPostRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	CategoryID int    `json:"categoryId"`
}

func (h *PostsHandler) Create(c *fiber.Ctx) error {
	authUser := middleware.GetAuthUser(c)
	if authUser == nil {
		return utils.Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var req createPostRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)
	if req.Title == "" || req.Content == "" || req.CategoryID <= 0 {
		return utils.Error(c, fiber.StatusBadRequest, "title, content and categoryId are required")
	}

	post := h.Store.CreatePost(models.Post{
		Title:      req.Title,
		Content:    req.Content,
		AuthorID:   authUser.ID,
		CategoryID: req.CategoryID,
		TimeAgo:    "Just now",
	})

	return utils.Success(c, fiber.StatusCreated, post)
}

type savePostRequest struct {
	Saved bool `json:"saved"`
}

func (h *PostsHandler) Save(c *fiber.Ctx) error {
	authUser := middleware.GetAuthUser(c)
	if authUser == nil {
		return utils.Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	postID, err := parseID(c.Params("id"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid post id")
	}

	var req savePostRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	h.Store.SavePost(postID, authUser.ID, req.Saved)
	return utils.Success(c, fiber.StatusOK, fiber.Map{"saved": req.Saved})
}

// Categories returns the select-box transform of the category list.
func (h *PostsHandler) Categories(c *fiber.Ctx) error {
	categories := h.Store.GetCategories()

	views := make([]fiber.Map, 0, len(categories))
	for _, category := range categories {
		views = append(views, fiber.Map{
			"value": strconv.Itoa(category.ID),
			"label": category.Name,
			"color": category.Color,
		})
	}

	return utils.Success(c, fiber.StatusOK, views)
}
