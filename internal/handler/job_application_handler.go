package handler

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/gurusoftware/backend/internal/model"
	"github.com/gurusoftware/backend/internal/service"
)

// multipartMemory は ParseMultipartForm がメモリに保持する上限。超えた分は一時ファイルへ。
const multipartMemory = 8 << 20

// JobApplicationHandler handles job application submission and admin management.
type JobApplicationHandler struct {
	applicationService service.JobApplicationService
	pages              PageConfig
}

// NewJobApplicationHandler creates a JobApplicationHandler with the given service.
func NewJobApplicationHandler(applicationService service.JobApplicationService, pages PageConfig) *JobApplicationHandler {
	return &JobApplicationHandler{applicationService: applicationService, pages: pages}
}

// submitApplicationRequest is the JSON form of POST /api/apply-job.
type submitApplicationRequest struct {
	Role       string `json:"role"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Experience string `json:"experience"`
	Message    string `json:"message"`
}

type submitApplicationResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	ApplicationID int64  `json:"application_id"`
}

// Submit handles POST /api/apply-job.
// Accepts JSON, or multipart/form-data with an optional "resume" file part.
func (h *JobApplicationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	req, resume, cleanup, err := h.decodeSubmit(r)
	if cleanup != nil {
		defer cleanup()
	}
	if err != nil {
		if errors.Is(err, io.EOF) {
			writeFailure(w, http.StatusBadRequest, service.MsgMissingFields)
			return
		}
		writeDecodeError(w, err)
		return
	}

	app := &model.JobApplication{
		Role:       req.Role,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Experience: req.Experience,
		Message:    req.Message,
	}
	if err := h.applicationService.Submit(r.Context(), app, resume); err != nil {
		writeServiceError(w, r, err)
		return
	}

	logFromRequest(r).Info("job application received",
		"application_id", app.ID,
		"with_resume", app.ResumeFilename != nil,
	)
	writeJSON(w, http.StatusCreated, submitApplicationResponse{
		Success:       true,
		Message:       "Job application submitted successfully",
		ApplicationID: app.ID,
	})
}

// decodeSubmit reads the request body according to its Content-Type.
// The returned cleanup releases temporary files of a multipart form.
func (h *JobApplicationHandler) decodeSubmit(r *http.Request) (submitApplicationRequest, *service.ResumeUpload, func(), error) {
	var req submitApplicationRequest
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "multipart/form-data":
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			return req, nil, nil, err
		}
		cleanup := func() { _ = r.MultipartForm.RemoveAll() }
		req = formRequest(r)

		file, header, err := r.FormFile("resume")
		if errors.Is(err, http.ErrMissingFile) {
			return req, nil, cleanup, nil
		}
		if err != nil {
			return req, nil, cleanup, err
		}
		// file は MultipartForm.RemoveAll 前に読み切られる
		resume := &service.ResumeUpload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Content:     file,
		}
		return req, resume, func() { file.Close(); cleanup() }, nil

	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return req, nil, nil, err
		}
		return formRequest(r), nil, nil, nil

	default:
		err := json.NewDecoder(r.Body).Decode(&req)
		return req, nil, nil, err
	}
}

func formRequest(r *http.Request) submitApplicationRequest {
	return submitApplicationRequest{
		Role:       r.FormValue("role"),
		Name:       r.FormValue("name"),
		Email:      r.FormValue("email"),
		Phone:      r.FormValue("phone"),
		Experience: r.FormValue("experience"),
		Message:    r.FormValue("message"),
	}
}

// applicationListResponse is the JSON response for GET /api/job-applications.
type applicationListResponse struct {
	Success      bool                    `json:"success"`
	Applications []*model.JobApplication `json:"applications"`
	Total        int                     `json:"total"`
	Page         int                     `json:"page"`
	PerPage      int                     `json:"per_page"`
	TotalPages   int                     `json:"total_pages"`
}

// List handles GET /api/job-applications?page=&per_page=.
func (h *JobApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	page := h.pages.parsePage(r)
	items, total, err := h.applicationService.List(r.Context(), page)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if items == nil {
		items = []*model.JobApplication{}
	}

	writeJSON(w, http.StatusOK, applicationListResponse{
		Success:      true,
		Applications: items,
		Total:        total,
		Page:         page.Number,
		PerPage:      page.PerPage,
		TotalPages:   page.TotalPages(total),
	})
}

type applicationResponse struct {
	Success     bool                  `json:"success"`
	Application *model.JobApplication `json:"application"`
}

// Get handles GET /api/job-application/{id}.
func (h *JobApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeFailure(w, http.StatusNotFound, msgNotFound)
		return
	}
	app, err := h.applicationService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, applicationResponse{Success: true, Application: app})
}

// Update handles PUT /api/job-application/{id}.
func (h *JobApplicationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeFailure(w, http.StatusNotFound, msgNotFound)
		return
	}
	var req statusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeDecodeError(w, err)
		return
	}
	if req.Status != nil {
		if err := h.applicationService.UpdateStatus(r.Context(), id, *req.Status); err != nil {
			writeServiceError(w, r, err)
			return
		}
	}
	writeMessage(w, http.StatusOK, "Application updated")
}

// Delete handles DELETE /api/job-application/{id}.
func (h *JobApplicationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeFailure(w, http.StatusNotFound, msgNotFound)
		return
	}
	if err := h.applicationService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Application deleted")
}
