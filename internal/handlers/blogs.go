package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/Hasan-Al-Banna-Nahid/blog-backend/internal/apperr"
	"github.com/Hasan-Al-Banna-Nahid/blog-backend/internal/db"
	"github.com/Hasan-Al-Banna-Nahid/blog-backend/internal/models"
	"github.com/Hasan-Al-Banna-Nahid/blog-backend/internal/validation"
)

const (
	maxMultipartMemory = 32 << 20
	maxMediaFiles      = 5
)

// BlogStore is the document-store surface the handlers need.
type BlogStore interface {
	CreateBlog(ctx context.Context, blog models.Blog) (*models.Blog, error)
	GetBlogByID(ctx context.Context, id string) (*models.Blog, error)
	ListBlogs(ctx context.Context, q db.ListQuery) ([]models.Blog, int64, error)
	SaveBlog(ctx context.Context, blog *models.Blog) error
	DeleteBlog(ctx context.Context, id string) (bool, error)
}

// MediaStore is the remote asset-store surface the handlers need.
// Deletes are best-effort and report nothing.
type MediaStore interface {
	UploadAll(ctx context.Context, files []*multipart.FileHeader) ([]string, error)
	Delete(ctx context.Context, url string)
	DeleteAll(ctx context.Context, urls []string)
}

type BlogsHandler struct {
	store BlogStore
	media MediaStore
}

func NewBlogsHandler(store BlogStore, media MediaStore) *BlogsHandler {
	return &BlogsHandler{store: store, media: media}
}

type BlogsResponse struct {
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
	Blogs []models.Blog `json:"blogs"`
}

// Create handles POST /api/blogs/create: validate the fields, upload the
// author image and media batch concurrently, then persist. Any upload
// failure aborts before the database write.
func (h *BlogsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	in := blogInputFromForm(r)
	if err := validation.BlogInput(in); err != nil {
		respondAppError(w, err)
		return
	}

	authorFiles := r.MultipartForm.File["authorImage"]
	mediaFiles := r.MultipartForm.File["media"]
	if len(authorFiles) == 0 {
		respondAppError(w, apperr.NewPolicy("Author image is required"))
		return
	}
	if len(mediaFiles) > maxMediaFiles {
		respondAppError(w, apperr.NewPolicy(fmt.Sprintf("at most %d media files are allowed", maxMediaFiles)))
		return
	}

	var authorURLs, mediaURLs []string
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		urls, err := h.media.UploadAll(ctx, authorFiles[:1])
		authorURLs = urls
		return err
	})
	g.Go(func() error {
		urls, err := h.media.UploadAll(ctx, mediaFiles)
		mediaURLs = urls
		return err
	})
	if err := g.Wait(); err != nil {
		respondAppError(w, apperr.NewUpstream("media upload failed", err))
		return
	}
	if mediaURLs == nil {
		mediaURLs = []string{}
	}

	blog := models.Blog{
		AuthorName:     in.AuthorName,
		Title:          in.Title,
		Category:       in.Category,
		SubCategory:    in.SubCategory,
		Summary:        in.Summary,
		Content:        in.Content,
		TravelTags:     splitTags(in.TravelTags),
		PublishingDate: parsePublishingDate(in.PublishingDate, time.Now().UTC()),
		AuthorImage:    authorURLs[0],
		Media:          mediaURLs,
	}
	created, err := h.store.CreateBlog(r.Context(), blog)
	if err != nil {
		respondAppError(w, apperr.NewUpstream("failed to create blog", err))
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// List handles GET /api/blogs with page, limit, category and search query
// parameters.
func (h *BlogsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := parsePositiveInt(q.Get("page"), 1)
	limit := parsePositiveInt(q.Get("limit"), 10)

	blogs, total, err := h.store.ListBlogs(r.Context(), db.ListQuery{
		Page:     page,
		Limit:    limit,
		Category: q.Get("category"),
		Search:   q.Get("search"),
	})
	if err != nil {
		respondAppError(w, apperr.NewUpstream("failed to load blogs", err))
		return
	}
	if blogs == nil {
		blogs = []models.Blog{}
	}
	respondJSON(w, http.StatusOK, BlogsResponse{
		Total: total,
		Page:  page,
		Limit: limit,
		Blogs: blogs,
	})
}

func (h *BlogsHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	blog, err := h.store.GetBlogByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondAppError(w, apperr.NewUpstream("failed to load blog", err))
		return
	}
	if blog == nil {
		respondAppError(w, apperr.NewNotFound("Blog not found"))
		return
	}
	respondJSON(w, http.StatusOK, blog)
}

// Update handles PUT /api/blogs/update/{id}. New files replace the stored
// URLs wholesale; absent optional fields retain their prior values.
func (h *BlogsHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	in := blogInputFromForm(r)
	if err := validation.BlogInput(in); err != nil {
		respondAppError(w, err)
		return
	}

	blog, err := h.store.GetBlogByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondAppError(w, apperr.NewUpstream("failed to load blog", err))
		return
	}
	if blog == nil {
		respondAppError(w, apperr.NewNotFound("Blog not found"))
		return
	}

	authorFiles := r.MultipartForm.File["authorImage"]
	mediaFiles := r.MultipartForm.File["media"]
	if len(mediaFiles) > maxMediaFiles {
		respondAppError(w, apperr.NewPolicy(fmt.Sprintf("at most %d media files are allowed", maxMediaFiles)))
		return
	}

	if len(authorFiles) > 0 {
		urls, err := h.media.UploadAll(r.Context(), authorFiles[:1])
		if err != nil {
			respondAppError(w, apperr.NewUpstream("media upload failed", err))
			return
		}
		blog.AuthorImage = urls[0]
	}
	if len(mediaFiles) > 0 {
		urls, err := h.media.UploadAll(r.Context(), mediaFiles)
		if err != nil {
			respondAppError(w, apperr.NewUpstream("media upload failed", err))
			return
		}
		blog.Media = urls
	}

	blog.AuthorName = in.AuthorName
	blog.Title = in.Title
	blog.Category = in.Category
	blog.Summary = in.Summary
	blog.Content = in.Content
	if in.SubCategory != "" {
		blog.SubCategory = in.SubCategory
	}
	if in.TravelTags != "" {
		blog.TravelTags = splitTags(in.TravelTags)
	}
	if in.PublishingDate != "" {
		blog.PublishingDate = parsePublishingDate(in.PublishingDate, blog.PublishingDate)
	}

	if err := h.store.SaveBlog(r.Context(), blog); err != nil {
		respondAppError(w, apperr.NewUpstream("failed to update blog", err))
		return
	}
	respondJSON(w, http.StatusOK, blog)
}

// Delete handles DELETE /api/blogs/delete/{id}. Remote assets are removed
// best-effort before the record; an asset-store outage never blocks the
// database delete.
func (h *BlogsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	blog, err := h.store.GetBlogByID(r.Context(), id)
	if err != nil {
		respondAppError(w, apperr.NewUpstream("failed to load blog", err))
		return
	}
	if blog == nil {
		respondAppError(w, apperr.NewNotFound("Blog not found"))
		return
	}

	if blog.AuthorImage != "" {
		h.media.Delete(r.Context(), blog.AuthorImage)
	}
	if len(blog.Media) > 0 {
		h.media.DeleteAll(r.Context(), blog.Media)
	}

	if _, err := h.store.DeleteBlog(r.Context(), id); err != nil {
		respondAppError(w, apperr.NewUpstream("failed to delete blog", err))
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Blog deleted successfully"})
}

func blogInputFromForm(r *http.Request) models.BlogInput {
	return models.BlogInput{
		AuthorName:     r.FormValue("authorName"),
		Title:          r.FormValue("title"),
		Category:       r.FormValue("category"),
		SubCategory:    r.FormValue("subCategory"),
		Summary:        r.FormValue("summary"),
		Content:        r.FormValue("content"),
		TravelTags:     r.FormValue("travelTags"),
		PublishingDate: r.FormValue("publishingDate"),
	}
}

// splitTags turns "x,y,z" into ["x","y","z"]. An empty input yields an
// empty slice, never nil.
func splitTags(raw string) []string {
	if raw == "" {
		return []string{}
	}
	return strings.Split(raw, ",")
}

var publishingDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parsePublishingDate returns fallback for absent or unparsable input.
func parsePublishingDate(raw string, fallback time.Time) time.Time {
	if raw == "" {
		return fallback
	}
	for _, layout := range publishingDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return fallback
}

func parsePositiveInt(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondAppError maps the closed error kinds to status codes and the
// response shapes clients depend on.
func respondAppError(w http.ResponseWriter, err error) {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	switch ae.Kind {
	case apperr.Validation:
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  ae.Message,
			"fields": ae.Fields,
		})
	case apperr.Policy:
		respondJSON(w, http.StatusBadRequest, map[string]string{"message": ae.Message})
	case apperr.NotFound:
		respondJSON(w, http.StatusNotFound, map[string]string{"message": ae.Message})
	default:
		respondError(w, http.StatusInternalServerError, ae.Error())
	}
}
