package telegram

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"employee-api/internal/app/service"
	"employee-api/internal/delivery/telegram/middleware"
	"employee-api/internal/delivery/telegram/router"
	"employee-api/internal/domain"

	"gopkg.in/telebot.v3"
)

const (
	callbackDelete = "emp_delete"
	callTimeout    = 10 * time.Second
)

type EmployeeDirectory interface {
	GetAllEmployees(ctx context.Context) ([]domain.Employee, error)
	GetEmployeeByID(ctx context.Context, id int64) (domain.Employee, bool, error)
	DeleteEmployeeByID(ctx context.Context, id int64) error
}

type Handler struct {
	Bot       *telebot.Bot
	Employees EmployeeDirectory
	Async     *service.AsyncService
	Callbacks *router.CallbackRouter
}

func (h *Handler) Register() {
	h.Bot.Handle("/start", h.handleStart)
	h.Bot.Handle("/employees", h.handleEmployees)
	h.Bot.Handle("/employee", h.handleEmployee)

	if h.Callbacks == nil {
		h.Callbacks = router.New()
	}
	h.Callbacks.Register(callbackDelete, h.handleDelete)
	h.Callbacks.Attach(h.Bot)
}

func (h *Handler) handleStart(c telebot.Context) error {
	return c.Send("Команды:\n/employees — список сотрудников\n/employee <id> — карточка сотрудника")
}

func (h *Handler) handleEmployees(c telebot.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	employees, err := service.Run(ctx, h.Async, func() ([]domain.Employee, error) {
		return h.Employees.GetAllEmployees(ctx)
	})
	if err != nil {
		log.Printf("[bot] list employees: %v", err)
		return c.Send("Ошибка при получении сотрудников: " + err.Error())
	}
	if len(employees) == 0 {
		return c.Send("Сотрудники не найдены.")
	}
	text, markup := employeeList(employees)
	return c.Send(text, markup)
}

func (h *Handler) handleEmployee(c telebot.Context) error {
	args := c.Args()
	if len(args) != 1 {
		return c.Send("Использование: /employee <id>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return c.Send("Некорректный id: " + args[0])
	}

	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	type lookup struct {
		e     domain.Employee
		found bool
	}
	res, err := service.Run(ctx, h.Async, func() (lookup, error) {
		e, found, err := h.Employees.GetEmployeeByID(ctx, id)
		return lookup{e, found}, err
	})
	if err != nil {
		log.Printf("[bot] get employee %d: %v", id, err)
		return c.Send("Ошибка при получении сотрудника: " + err.Error())
	}
	if !res.found {
		return c.Send(fmt.Sprintf("Сотрудник %d не найден.", id))
	}
	return c.Send(formatEmployee(res.e))
}

func (h *Handler) handleDelete(c telebot.Context, payload string) error {
	id, err := strconv.ParseInt(payload, 10, 64)
	if err != nil {
		return middleware.EditOrSend(c, "Некорректный id: "+payload, nil)
	}

	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	_, err = service.Run(ctx, h.Async, func() (struct{}, error) {
		return struct{}{}, h.Employees.DeleteEmployeeByID(ctx, id)
	})
	if err != nil {
		log.Printf("[bot] delete employee %d: %v", id, err)
		return middleware.EditOrSend(c, "Ошибка при удалении: "+err.Error(), nil)
	}
	log.Printf("[bot] employee %d deleted", id)
	return middleware.EditOrSend(c, fmt.Sprintf("Сотрудник %d удалён.", id), nil)
}

func formatEmployee(e domain.Employee) string {
	return fmt.Sprintf("ID: %d, %s %s <%s>", e.ID, e.FirstName, e.LastName, e.Email)
}

// employeeList renders one line and one delete button per employee.
func employeeList(employees []domain.Employee) (string, *telebot.ReplyMarkup) {
	markup := &telebot.ReplyMarkup{}
	var b strings.Builder
	b.WriteString("Список сотрудников:\n")
	rows := make([]telebot.Row, 0, len(employees))
	for _, e := range employees {
		b.WriteString(formatEmployee(e))
		b.WriteByte('\n')
		btn := markup.Data("Удалить "+strconv.FormatInt(e.ID, 10), callbackDelete, strconv.FormatInt(e.ID, 10))
		rows = append(rows, markup.Row(btn))
	}
	markup.Inline(rows...)
	return b.String(), markup
}
