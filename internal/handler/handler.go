package handler

import (
	"sync"

	"github.com/go-chi/chi/v5"
	arlocale "github.com/go-playground/locales/ar"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ar_translations "github.com/go-playground/validator/v10/translations/ar"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/marsa-control/vessel-clearance/backend/internal/config"
	"github.com/marsa-control/vessel-clearance/backend/internal/domain"
	"github.com/marsa-control/vessel-clearance/backend/internal/repository"
	"github.com/marsa-control/vessel-clearance/backend/internal/schedule"
)

type Handler struct {
	validate      *validator.Validate
	config        *config.Config
	repository    *repository.Repository
	translator    ut.Translator
	notifyChannel *amqp.Channel
	redisClient   *redis.Client

	// duty schedule components; rosterMu also guards the roster pointer swap
	// done when persisting a roster change fails
	gate     *schedule.Gate
	store    *schedule.Store
	rosterMu sync.Mutex
	roster   *schedule.Roster

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, notifyCh *amqp.Channel, rdb *redis.Client, gate *schedule.Gate, store *schedule.Store, roster *schedule.Roster) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	ar := arlocale.New()
	uni := ut.New(ar, ar)
	trans, _ := uni.GetTranslator("ar")
	if err := ar_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:      validate,
		config:        cfg,
		repository:    repo,
		translator:    trans,
		notifyChannel: notifyCh,
		redisClient:   rdb,
		gate:          gate,
		store:         store,
		roster:        roster,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// everything below requires a logged-in session
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(h.RequiredRole([]domain.Role{domain.RoleSupervisor}))
			r.Post("/", h.CreateUser)
			r.Get("/", h.GetAllUserInfo)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.userInfo)
				r.Get("/", h.GetUserInfo)
				r.With(h.preventOperateInitialAdmin).Patch("/", h.UpdateUser)
				r.With(h.preventOperateInitialAdmin).Delete("/", h.DeleteUser)
				r.Patch("/password", h.UpdateUserPassword)
			})
		})

		r.Route("/vessels", func(r chi.Router) {
			r.Post("/", h.CreateVessel)
			r.Get("/waiting", h.GetWaitingVessels)
			r.Get("/arrived", h.GetArrivedVessels)
			r.Get("/search", h.SearchVessels)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.vesselInfo)
				r.Get("/", h.GetVessel)
				r.Post("/arrival", h.RecordArrival)
				r.Patch("/", h.UpdateVessel)
				r.With(h.RequiredRole([]domain.Role{domain.RoleSupervisor})).Delete("/", h.DeleteVessel)
			})
		})

		r.Route("/statistics", func(r chi.Router) {
			r.Get("/monthly", h.GetMonthlyStatistics)
			r.Get("/operators", h.GetOperatorStatistics)
			r.Get("/range", h.GetArrivalsByRange)
			r.Get("/recent", h.GetRecentArrivals)
		})

		r.Route("/schedule", func(r chi.Router) {
			r.Post("/unlock", h.UnlockSchedule)
			r.Get("/periods", h.GetSchedulePeriods)
			r.Post("/periods", h.AddSchedulePeriod)
			r.Delete("/periods", h.ClearSchedulePeriods)
			r.Delete("/periods/{index}", h.DeleteSchedulePeriod)
			r.Route("/staff", func(r chi.Router) {
				r.Get("/", h.GetDutyStaff)
				r.Post("/", h.AddDutyStaff)
				r.Patch("/{name}", h.RenameDutyStaff)
				r.Delete("/{name}", h.RemoveDutyStaff)
				r.Post("/{name}/toggle", h.ToggleDutyStaff)
			})
		})
	})
}
