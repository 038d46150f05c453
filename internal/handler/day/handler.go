package day

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"github.com/zhouzirui/roster/backend/internal/model/day"
	"github.com/zhouzirui/roster/backend/pkg/utils"
)

type dayView struct {
	Day     day.Day `json:"day"`
	Label   string  `json:"label"`
	Weekend bool    `json:"weekend"`
}

// Handler 暴露星期枚举及其标签
type Handler struct{}

func New() *Handler {
	return &Handler{}
}

// RegisterRoutes 注册day相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/days", h.handleListDays)
}

func (h *Handler) handleListDays(w http.ResponseWriter, r *http.Request) {
	views := lo.Map(day.All(), func(d day.Day, _ int) dayView {
		return dayView{Day: d, Label: d.Label(), Weekend: d.IsWeekend()}
	})
	utils.RespondJSON(w, http.StatusOK, views)
}
