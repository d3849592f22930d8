package handlers

import (
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/medconnect/backend/internal/models"
	"github.com/medconnect/backend/internal/store"
	"github.com/medconnect/backend/pkg/utils"
)

type EventsHandler struct {
	Store *store.Store
}

func NewEventsHandler(s *store.Store) *EventsHandler {
	return &EventsHandler{Store: s}
}

type eventDate struct {
	Month string `json:"month"`
	Day   string `json:"day"`
}

type eventView struct {
	models.Event
	AttendeeCount int       `json:"attendeeCount"`
	EventType     labelView `json:"eventType"`
	DateFormatted eventDate `json:"dateFormatted"`
}

// Upcoming lists every event ordered by date. Attendance is not tracked,
// so the count is a display placeholder.
func (h *EventsHandler) Upcoming(c *fiber.Ctx) error {
	events := h.Store.GetEvents()
	sort.Slice(events, func(i, j int) bool { return events[i].Date.Before(events[j].Date) })

	views := make([]eventView, 0, len(events))
	for _, event := range events {
		view := eventView{
			Event:         event,
			AttendeeCount: rand.Intn(50) + 5,
			EventType:     labelView{Name: "Event", Color: "primary"},
			DateFormatted: eventDate{
				Month: strings.ToUpper(event.Date.Format("Jan")),
				Day:   strconv.Itoa(event.Date.Day()),
			},
		}
		if eventType, ok := h.Store.GetEventType(event.EventTypeID); ok {
			view.EventType = labelView{Name: eventType.Name, Color: eventType.Color}
		}
		views = append(views, view)
	}

	return utils.Success(c, fiber.StatusOK, views)
}

type createEventRequest struct {
	Title       string `json:"title"`
	Location    string `json:"location"`
	Time        string `json:"time"`
	Date        string `json:"date"`
	EventTypeID int    `json:"eventTypeId"`
}

func (h *EventsHandler) Create(c *fiber.Ctx) error {
	var req createEventRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if req.Title == "" || req.Date == "" {
		return utils.Error(c, fiber.StatusBadRequest, "title and date are required")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "date must be formatted as YYYY-MM-DD")
	}

	event := h.Store.CreateEvent(models.Event{
		Title:       req.Title,
		Location:    req.Location,
		Time:        req.Time,
		Date:        date,
		EventTypeID: req.EventTypeID,
	})

	return utils.Success(c, fiber.StatusCreated, event)
}
