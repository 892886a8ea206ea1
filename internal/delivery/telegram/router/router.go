package router

import (
	"log"
	"strings"

	"gopkg.in/telebot.v3"
)

type HandlerFunc func(c telebot.Context, payload string) error

// CallbackRouter dispatches inline-button callbacks by their unique key.
// Callback data arrives as "\f<key>|<payload>".
type CallbackRouter struct {
	handlers map[string]HandlerFunc
}

func New() *CallbackRouter {
	return &CallbackRouter{handlers: make(map[string]HandlerFunc)}
}

func (r *CallbackRouter) Register(key string, h HandlerFunc) {
	r.handlers[key] = h
}

func (r *CallbackRouter) Attach(bot *telebot.Bot) {
	bot.Handle(telebot.OnCallback, func(c telebot.Context) error {
		_, err := r.Dispatch(c)
		return err
	})
}

// Dispatch reports whether a handler was registered for the callback key.
func (r *CallbackRouter) Dispatch(c telebot.Context) (bool, error) {
	key, payload := Split(c.Data())
	log.Printf("[callback] key=%q payload=%q", key, payload)
	_ = c.Respond()

	if h, ok := r.handlers[key]; ok {
		return true, h(c, payload)
	}
	return false, nil
}

func Split(raw string) (key, payload string) {
	raw = strings.TrimPrefix(raw, "\f")
	key = raw
	if i := strings.IndexByte(raw, '|'); i >= 0 {
		key = raw[:i]
		payload = raw[i+1:]
	}
	return key, payload
}
