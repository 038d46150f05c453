package person

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/zhouzirui/roster/backend/internal/middleware"
	"github.com/zhouzirui/roster/backend/internal/model/day"
	"github.com/zhouzirui/roster/backend/internal/model/person"
	"github.com/zhouzirui/roster/backend/pkg/utils"
)

// Handler person目录的HTTP处理器
type Handler struct {
	people person.Store
	logger logrus.FieldLogger
}

// New 创建person处理器
func New(people person.Store, logger logrus.FieldLogger) *Handler {
	return &Handler{
		people: people,
		logger: logger,
	}
}

// RegisterRoutes 注册person相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/people", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Get("/search", h.handleFindByName)
		r.Get("/count", h.handleCountByGender)
		r.Get("/by-day", h.handleGroupByDay)
		r.Get("/favorite-day/{day}", h.handleWithFavoriteDay)
		r.Get("/{id}", h.handleFindByID)
	})
}

// handleList 列出所有人
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.people.List())
}

// handleFindByID 按ID查找
func (h *Handler) handleFindByID(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "id must be an integer")
		return
	}

	found, ok := h.people.FindByID(id).Get()
	if !ok {
		h.requestLogger(r).WithField("person_id", id).Debug("person not found")
		utils.RespondError(w, http.StatusNotFound, "person not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, found)
}

// handleFindByName 按名字查找（不区分大小写）
func (h *Handler) handleFindByName(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		utils.RespondError(w, http.StatusBadRequest, "name query parameter is required")
		return
	}

	found, ok := h.people.FindByName(name).Get()
	if !ok {
		h.requestLogger(r).WithField("name", name).Debug("person not found")
		utils.RespondError(w, http.StatusNotFound, "person not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, found)
}

// handleCountByGender 按性别计数
func (h *Handler) handleCountByGender(w http.ResponseWriter, r *http.Request) {
	gender, err := person.ParseGender(r.URL.Query().Get("gender"))
	if err != nil {
		h.respondParseError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, struct {
		Gender person.Gender `json:"gender"`
		Count  int           `json:"count"`
	}{Gender: gender, Count: h.people.CountByGender(gender)})
}

// handleWithFavoriteDay 列出最喜欢某一天的人
func (h *Handler) handleWithFavoriteDay(w http.ResponseWriter, r *http.Request) {
	d, err := day.Parse(chi.URLParam(r, "day"))
	if err != nil {
		h.respondParseError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, h.people.WithFavoriteDay(d))
}

// handleGroupByDay 按最喜欢的日子分组
func (h *Handler) handleGroupByDay(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.people.GroupByFavoriteDay())
}

func (h *Handler) respondParseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, day.ErrUnknownDay), errors.Is(err, person.ErrUnknownGender):
		utils.RespondError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.WithError(err).Error("unexpected parse failure")
		utils.RespondError(w, http.StatusInternalServerError, "internal error")
	}
}

func (h *Handler) requestLogger(r *http.Request) logrus.FieldLogger {
	return h.logger.WithField("request_id", middleware.RequestIDFromContext(r.Context()))
}
