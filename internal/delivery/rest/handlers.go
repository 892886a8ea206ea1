package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"employee-api/internal/domain"
)

const deletedMessage = "Employee deleted successfully!"

// EmployeeService is what the REST layer needs from the application service.
type EmployeeService interface {
	CreateEmployee(ctx context.Context, e domain.Employee) (domain.Employee, error)
	GetAllEmployees(ctx context.Context) ([]domain.Employee, error)
	GetEmployeeByID(ctx context.Context, id int64) (domain.Employee, bool, error)
	FindEmployeeByName(ctx context.Context, firstName, lastName string) (domain.Employee, bool, error)
	UpdateEmployee(ctx context.Context, e domain.Employee) (domain.Employee, error)
	DeleteEmployeeByID(ctx context.Context, id int64) error
}

type Handler struct {
	Employees EmployeeService
}

func NewHandler(employees EmployeeService) *Handler {
	return &Handler{Employees: employees}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/employees", h.handleCreate)
	mux.HandleFunc("GET /api/employees", h.handleList)
	mux.HandleFunc("GET /api/employees/{id}", h.handleGet)
	mux.HandleFunc("PUT /api/employees/{id}", h.handleUpdate)
	mux.HandleFunc("DELETE /api/employees/{id}", h.handleDelete)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var e domain.Employee
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}
	created, err := h.Employees.CreateEmployee(r.Context(), e)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// handleList also serves the name lookup when firstName/lastName are given.
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	firstName, lastName := q.Get("firstName"), q.Get("lastName")
	if firstName == "" && lastName == "" {
		employees, err := h.Employees.GetAllEmployees(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if employees == nil {
			employees = []domain.Employee{}
		}
		writeJSON(w, http.StatusOK, employees)
		return
	}
	if firstName == "" || lastName == "" {
		writeError(w, http.StatusBadRequest, "firstName and lastName must be given together")
		return
	}
	e, ok, err := h.Employees.FindEmployeeByName(r.Context(), firstName, lastName)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	result := []domain.Employee{}
	if ok {
		result = append(result, e)
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	e, found, err := h.Employees.GetEmployeeByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, domain.NotFoundID(id).Error())
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var e domain.Employee
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}
	e.ID = id
	updated, err := h.Employees.UpdateEmployee(r.Context(), e)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.Employees.DeleteEmployeeByID(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(deletedMessage))
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id: "+r.PathValue("id"))
		return 0, false
	}
	return id, true
}

type errorBody struct {
	Error string `json:"error"`
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrDuplicateKey):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		log.Printf("[http] internal error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[http] encode response: %v", err)
	}
}
