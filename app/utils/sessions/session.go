package sessions

import (
	"encoding/gob"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
)

const (
	sessionCookieName = "backoffice-session"

	FlashSuccess = "success"
	FlashError   = "error"
)

// Toast adalah notifikasi sekali-baca yang ditampilkan setelah redirect.
type Toast struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func init() {
	gob.Register(Toast{})
}

type FlashStore interface {
	Add(w http.ResponseWriter, r *http.Request, status, message string)
	Pop(w http.ResponseWriter, r *http.Request) []Toast
}

type CookieFlashStore struct {
	store *sessions.CookieStore
}

func NewCookieFlashStore(keyPairs ...[]byte) *CookieFlashStore {
	store := sessions.NewCookieStore(keyPairs...)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(12 * time.Hour / time.Second),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieFlashStore{store: store}
}

func (c *CookieFlashStore) getSession(r *http.Request) *sessions.Session {
	session, err := c.store.Get(r, sessionCookieName)
	if err != nil {
		log.Printf("FlashStore: error getting session: %v", err)
	}
	return session
}

func (c *CookieFlashStore) Add(w http.ResponseWriter, r *http.Request, status, message string) {
	session := c.getSession(r)
	if session == nil {
		return
	}
	session.AddFlash(Toast{Status: status, Message: message})
	if err := session.Save(r, w); err != nil {
		log.Printf("FlashStore: error saving flash: %v", err)
	}
}

// Pop mengambil semua toast yang tertunda dan langsung mengosongkannya.
func (c *CookieFlashStore) Pop(w http.ResponseWriter, r *http.Request) []Toast {
	session := c.getSession(r)
	if session == nil {
		return nil
	}
	flashes := session.Flashes()
	if len(flashes) > 0 {
		if err := session.Save(r, w); err != nil {
			log.Printf("FlashStore: error clearing flashes: %v", err)
		}
	}
	toasts := make([]Toast, 0, len(flashes))
	for _, f := range flashes {
		if t, ok := f.(Toast); ok {
			toasts = append(toasts, t)
		}
	}
	return toasts
}
