package http

import (
	"net/http"

	"github.com/MKhiriev/ecw-api/internal/utils"
	"github.com/MKhiriev/ecw-api/models"
)

func (h *Handler) listPatients(w http.ResponseWriter, r *http.Request) {
	skip, err := queryInt(r, skipParam, defaultSkip)
	if err != nil {
		h.unprocessable(w, r, err)
		return
	}
	limit, err := queryInt(r, limitParam, defaultLimit)
	if err != nil {
		h.unprocessable(w, r, err)
		return
	}

	page, err := h.services.PatientService.List(r.Context(), skip, limit)
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	h.writeJSON(w, r, page, http.StatusOK)
}

func (h *Handler) getPatient(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, patientIDParam)
	if err != nil {
		h.unprocessable(w, r, err)
		return
	}

	patient, err := h.services.PatientService.Get(r.Context(), id)
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	h.writeJSON(w, r, patient, http.StatusOK)
}

func (h *Handler) createPatient(w http.ResponseWriter, r *http.Request) {
	body, err := utils.DecodeJSONObject(r.Body)
	if err != nil {
		h.unprocessable(w, r, err)
		return
	}

	result, err := h.services.PatientService.Create(r.Context(), models.Patient(body))
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	h.writeJSON(w, r, result, http.StatusCreated)
}

func (h *Handler) updatePatient(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, patientIDParam)
	if err != nil {
		h.unprocessable(w, r, err)
		return
	}
	body, err := utils.DecodeJSONObject(r.Body)
	if err != nil {
		h.unprocessable(w, r, err)
		return
	}

	result, err := h.services.PatientService.Update(r.Context(), id, models.Patient(body))
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	h.writeJSON(w, r, result, http.StatusOK)
}

func (h *Handler) deletePatient(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, patientIDParam)
	if err != nil {
		h.unprocessable(w, r, err)
		return
	}

	msg, err := h.services.PatientService.Delete(r.Context(), id)
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	h.writeJSON(w, r, msg, http.StatusOK)
}
