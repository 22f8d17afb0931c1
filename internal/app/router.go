package app

import (
	"net/http"

	"github.com/EmreNP/sendikaapp-sub000/internal/limiter"
	middleware "github.com/EmreNP/sendikaapp-sub000/internal/middleware/http"
	"github.com/EmreNP/sendikaapp-sub000/internal/service"
)

// Router binds the HTTP handlers to their routes and middleware chains.
type Router struct {
	members *service.MembersHandler
	posts   *service.PostsHandler
	bulk    *service.BulkHandler

	auth      middleware.AuthMiddleware
	token     middleware.TokenMiddleware
	limiters  *limiter.Manager
	responder *service.Responder
}

func NewRouter(
	members *service.MembersHandler,
	posts *service.PostsHandler,
	bulk *service.BulkHandler,
	auth middleware.AuthMiddleware,
	token middleware.TokenMiddleware,
	limiters *limiter.Manager,
	responder *service.Responder,
) *Router {
	return &Router{
		members:   members,
		posts:     posts,
		bulk:      bulk,
		auth:      auth,
		token:     token,
		limiters:  limiters,
		responder: responder,
	}
}

// Register mounts every route on the mux. Routes use the method-and-path
// pattern syntax, so a wrong method yields 405 from the mux itself.
func (rt *Router) Register(mux *http.ServeMux) {
	defaultLimit := middleware.CreateRateLimitMiddleware(rt.limiters, rt.responder, "default")
	registerLimit := middleware.CreateRateLimitMiddleware(rt.limiters, rt.responder, "register")
	bulkLimit := middleware.CreateRateLimitMiddleware(rt.limiters, rt.responder, "bulk")

	authed := func(h http.HandlerFunc) http.Handler {
		return rt.auth(defaultLimit(h))
	}

	// Registration runs before a member document exists, so it is guarded
	// by the token middleware rather than the full auth middleware.
	mux.Handle("POST /api/v1/members", rt.token(registerLimit(http.HandlerFunc(rt.members.Register))))

	mux.Handle("PUT /api/v1/members/{uid}/details", authed(rt.members.CompleteDetails))
	mux.Handle("POST /api/v1/members/{uid}/review", authed(rt.members.Review))
	mux.Handle("PATCH /api/v1/members/{uid}", authed(rt.members.Update))
	mux.Handle("PUT /api/v1/members/{uid}/role", authed(rt.members.UpdateRole))
	mux.Handle("PUT /api/v1/members/{uid}/active", authed(rt.members.SetActive))
	mux.Handle("DELETE /api/v1/members/{uid}", authed(rt.members.Delete))
	mux.Handle("GET /api/v1/members/{uid}", authed(rt.members.Get))
	mux.Handle("GET /api/v1/members", authed(rt.members.List))
	mux.Handle("GET /api/v1/members/{uid}/audit-logs", authed(rt.members.AuditLogs))

	mux.Handle("POST /api/v1/branches/{branch_id}/posts", authed(rt.posts.Create))
	mux.Handle("GET /api/v1/branches/{branch_id}/posts", authed(rt.posts.List))
	mux.Handle("PATCH /api/v1/posts/{post_id}", authed(rt.posts.Update))
	mux.Handle("PUT /api/v1/posts/{post_id}/order", authed(rt.posts.Move))
	mux.Handle("PUT /api/v1/posts/{post_id}/published", authed(rt.posts.SetPublished))
	mux.Handle("DELETE /api/v1/posts/{post_id}", authed(rt.posts.Delete))

	mux.Handle("POST /api/v1/members/bulk", rt.auth(bulkLimit(http.HandlerFunc(rt.bulk.Members))))
	mux.Handle("POST /api/v1/posts/bulk", rt.auth(bulkLimit(http.HandlerFunc(rt.bulk.Posts))))
}
