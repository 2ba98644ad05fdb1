package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gurusoftware/backend/internal/model"
	"github.com/gurusoftware/backend/internal/service"
)

// ContactHandler handles contact form submission and admin management.
type ContactHandler struct {
	contactService service.ContactService
	pages          PageConfig
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService, pages PageConfig) *ContactHandler {
	return &ContactHandler{contactService: contactService, pages: pages}
}

// submitContactRequest is the expected JSON body for POST /api/contact.
type submitContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type submitContactResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	SubmissionID int64  `json:"submission_id"`
}

// Submit handles POST /api/contact.
// name, email, subject and message are required; phone is optional.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			writeFailure(w, http.StatusBadRequest, service.MsgMissingFields)
			return
		}
		writeDecodeError(w, err)
		return
	}

	sub := &model.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := h.contactService.Submit(r.Context(), sub); err != nil {
		writeServiceError(w, r, err)
		return
	}

	logFromRequest(r).Info("contact submission received", "submission_id", sub.ID)
	writeJSON(w, http.StatusCreated, submitContactResponse{
		Success:      true,
		Message:      "Contact form submitted successfully",
		SubmissionID: sub.ID,
	})
}

// contactListResponse is the JSON response for GET /api/contact-submissions.
type contactListResponse struct {
	Success     bool                       `json:"success"`
	Submissions []*model.ContactSubmission `json:"submissions"`
	Total       int                        `json:"total"`
	Page        int                        `json:"page"`
	PerPage     int                        `json:"per_page"`
	TotalPages  int                        `json:"total_pages"`
}

// List handles GET /api/contact-submissions?page=&per_page=.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	page := h.pages.parsePage(r)
	items, total, err := h.contactService.List(r.Context(), page)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	// Return [] not null for empty lists
	if items == nil {
		items = []*model.ContactSubmission{}
	}

	writeJSON(w, http.StatusOK, contactListResponse{
		Success:     true,
		Submissions: items,
		Total:       total,
		Page:        page.Number,
		PerPage:     page.PerPage,
		TotalPages:  page.TotalPages(total),
	})
}

type contactResponse struct {
	Success    bool                     `json:"success"`
	Submission *model.ContactSubmission `json:"submission"`
}

// Get handles GET /api/contact-submission/{id}.
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeFailure(w, http.StatusNotFound, msgNotFound)
		return
	}
	sub, err := h.contactService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contactResponse{Success: true, Submission: sub})
}

// Update handles PUT /api/contact-submission/{id}.
// A body without "status" is accepted and changes nothing.
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
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
		if err := h.contactService.UpdateStatus(r.Context(), id, *req.Status); err != nil {
			writeServiceError(w, r, err)
			return
		}
	}
	writeMessage(w, http.StatusOK, "Submission updated")
}

// Delete handles DELETE /api/contact-submission/{id}. Missing ids succeed.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeFailure(w, http.StatusNotFound, msgNotFound)
		return
	}
	if err := h.contactService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Submission deleted")
}
