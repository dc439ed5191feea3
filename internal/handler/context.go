package handler

type ContextKey string

var (
	RoleCtxKey     ContextKey = "role"
	SubCtxKey      ContextKey = "sub"
	MyInfoCtx      ContextKey = "myInfo"
	UserInfoCtx    ContextKey = "userInfo"
	TeamCtx        ContextKey = "team"
	ProjectCtx     ContextKey = "project"
	ProjectTaskCtx ContextKey = "projectTask"
	AssignmentCtx  ContextKey = "assignment"
	ProductCtx     ContextKey = "product"
	OrderCtx       ContextKey = "order"
)
