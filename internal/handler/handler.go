package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/summit-surfaces/install-manager/backend/internal/config"
	"github.com/summit-surfaces/install-manager/backend/internal/domain"
	"github.com/summit-surfaces/install-manager/backend/internal/repository"
	"github.com/summit-surfaces/install-manager/backend/internal/scheduler"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	scheduler   *scheduler.Scheduler
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		scheduler:   scheduler.New(repo),
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

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

	// Public storefront surface: estimator, checkout, shipment tracking.
	h.Mux.Post("/estimates", h.ComputeEstimate)
	h.Mux.Get("/products", h.GetAllProducts)
	h.Mux.Post("/orders", h.CreateOrder)
	h.Mux.Get("/track/{code}", h.TrackShipment)

	// Everything below requires a logged-in back-office user.
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
		})

		r.Route("/users", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/", h.CreateUser)
			r.Get("/", h.GetAllUserInfo)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.userInfo)
				r.Get("/", h.GetUserInfo)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/", h.UpdateUser)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteUser)
			})
		})

		r.Route("/teams", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/", h.CreateTeam)
			r.Get("/", h.GetAllTeams)
			r.Get("/workload", h.GetTeamWorkload)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.team)
				r.Get("/", h.GetTeam)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/", h.UpdateTeam)
				r.Get("/assignments", h.GetTeamAssignments)
			})
		})

		r.Route("/projects", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleCoordinator})).Post("/", h.CreateProject)
			r.Get("/", h.GetAllProjects)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.project)
				r.Get("/", h.GetProject)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleCoordinator})).Patch("/", h.UpdateProject)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteProject)
				r.Get("/assignments", h.GetProjectAssignments)
				r.Route("/tasks", func(r chi.Router) {
					r.Get("/", h.GetProjectTasks)
					r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleCoordinator})).Post("/", h.CreateProjectTask)
				})
			})
		})

		r.Route("/tasks/{id}", func(r chi.Router) {
			r.Use(h.projectTask)
			r.Patch("/", h.UpdateProjectTask)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleCoordinator})).Delete("/", h.DeleteProjectTask)
		})

		r.Route("/assignments", func(r chi.Router) {
			r.Use(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleCoordinator}))
			r.Post("/", h.CreateAssignment)
			r.Post("/check", h.CheckAssignment)
			r.Get("/timeline", h.GetAssignmentTimeline)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.assignment)
				r.Get("/", h.GetAssignment)
				r.Patch("/status", h.UpdateAssignmentStatus)
			})
		})

		r.Route("/admin/products", func(r chi.Router) {
			r.Use(h.RequiredRole([]domain.Role{domain.RoleAdmin}))
			r.Post("/", h.CreateProduct)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.product)
				r.Get("/", h.GetProduct)
				r.Patch("/", h.UpdateProduct)
			})
		})

		r.Route("/admin/orders", func(r chi.Router) {
			r.Use(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleCoordinator}))
			r.Get("/", h.GetAllOrders)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.order)
				r.Get("/", h.GetOrder)
				r.Patch("/status", h.UpdateOrderStatus)
			})
		})

		r.Route("/admin/shipments", func(r chi.Router) {
			r.Use(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleCoordinator}))
			r.Post("/", h.CreateShipment)
			r.Post("/{code}/events", h.AddShipmentEvent)
		})
	})
}
