package main

import (
	"errors"
	"net/http"
	"strconv"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/sublee/kinderror"
)

//go:generate go run github.com/sublee/kinderror/cmd/kinderror

// ErrorKind classifies failures of the user store.
//
//kinderror:generate source = "error", display = "{kind}: {source}"
type ErrorKind int

const (
	NotFound ErrorKind = iota + 1
	Conflict
	Invalid
)

func (k ErrorKind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case Conflict:
		return "conflict"
	case Invalid:
		return "invalid"
	}
	return "unknown"
}

// Status returns the HTTP status code for the kind.
func (k ErrorKind) Status() int {
	switch k {
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	case Invalid:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Store keeps users in memory.
type Store struct {
	mu    sync.Mutex
	users map[int]User
}

func NewStore() *Store {
	return &Store{users: make(map[int]User)}
}

func (s *Store) Get(id int) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return User{}, NewError(NotFound, errors.New("user "+strconv.Itoa(id)))
	}
	return u, nil
}

func (s *Store) Add(u User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.Name == "" {
		return NewError(Invalid, errors.New("empty name"))
	}
	if _, ok := s.users[u.ID]; ok {
		return NewError(Conflict, errors.New("user "+strconv.Itoa(u.ID)))
	}
	s.users[u.ID] = u
	return nil
}

// handleError renders errors which carry an ErrorKind with the status of the
// kind.
func handleError(err error, c echo.Context) {
	if kind, ok := kinderror.KindOf[ErrorKind](err); ok {
		_ = c.JSON(kind.Status(), map[string]string{"error": err.Error()})
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		_ = c.JSON(he.Code, map[string]any{"error": he.Message})
		return
	}
	_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func NewServer(store *Store) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handleError

	e.GET("/users/:id", func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return NewError(Invalid, err)
		}
		u, err := store.Get(id)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, u)
	})

	e.POST("/users", func(c echo.Context) error {
		var u User
		if err := c.Bind(&u); err != nil {
			return NewError(Invalid, err)
		}
		if err := store.Add(u); err != nil {
			return err
		}
		return c.JSON(http.StatusCreated, u)
	})

	return e
}

func main() {
	e := NewServer(NewStore())
	e.Logger.Fatal(e.Start(":8080"))
}
