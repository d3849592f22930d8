package handlers

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/medconnect/backend/internal/models"
)

func parseID(value string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(value))
}

// participantView is the compact user shape attached to posts, documents
// and colleague lists.
type participantView struct {
	ID         int    `json:"id"`
	Initials   string `json:"initials"`
	ColorClass string `json:"colorClass"`
}

type labelView struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

var specialtyColorClasses = map[string]string{
	"Cardiology":         "bg-primary/20 text-primary",
	"Neurology":          "bg-secondary/20 text-secondary",
	"Infectious Disease": "bg-green-100 text-green-600",
	"Pulmonology":        "bg-accent/20 text-accent/80",
}

func colorClassForSpecialty(specialty string) string {
	if class, ok := specialtyColorClasses[specialty]; ok {
		return class
	}
	return "bg-gray-200 text-gray-600"
}

func fileTypeFromName(filename string) models.FileType {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return models.FileTypePDF
	case ".xls", ".xlsx":
		return models.FileTypeExcel
	case ".ppt", ".pptx":
		return models.FileTypePPT
	case ".doc", ".docx":
		return models.FileTypeWord
	default:
		return models.FileTypeUnknown
	}
}

type fileTypeDisplay struct {
	Icon  string
	Color string
}

var fileTypeDisplays = map[models.FileType]fileTypeDisplay{
	models.FileTypePDF:   {Icon: "description", Color: "primary"},
	models.FileTypeExcel: {Icon: "insert_chart", Color: "green-600"},
	models.FileTypePPT:   {Icon: "slideshow", Color: "blue-500"},
}

func displayForFileType(fileType models.FileType) fileTypeDisplay {
	if display, ok := fileTypeDisplays[fileType]; ok {
		return display
	}
	return fileTypeDisplay{Icon: "description", Color: "gray-500"}
}
