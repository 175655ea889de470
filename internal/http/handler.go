package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"blog-server/internal/domain"
	"blog-server/internal/service"
)

// Handler wires HTTP routes to domain services. Responses are rendered HTML
// or redirects; identity comes from the session middleware.
type Handler struct {
	users      service.UserService
	sessions   service.SessionService
	posts      service.PostService
	comments   service.CommentService
	logger     *logrus.Logger
	cookieName string
	sessionTTL time.Duration
}

func NewHandler(
	users service.UserService,
	sessions service.SessionService,
	posts service.PostService,
	comments service.CommentService,
	logger *logrus.Logger,
	cookieName string,
	sessionTTL time.Duration,
) *Handler {
	return &Handler{
		users:      users,
		sessions:   sessions,
		posts:      posts,
		comments:   comments,
		logger:     logger,
		cookieName: cookieName,
		sessionTTL: sessionTTL,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(h.sessionMiddleware())

	router.GET("/", h.home)
	router.GET("/about", h.about)
	router.GET("/contact", h.contact)

	router.GET("/userposts", h.userPosts)
	router.GET("/allposts/:userName", h.allPosts)
	router.GET("/posts/:postId", h.postDetail)

	router.GET("/compose", h.composeForm)
	router.POST("/compose", h.composeSubmit)
	router.POST("/comment/:postId", h.commentSubmit)
	router.GET("/update/:postId", h.updateForm)
	router.POST("/update/:postId", h.updateSubmit)
	router.GET("/delete/:postId", h.deletePost)

	router.GET("/login", h.loginForm)
	router.POST("/login", h.loginSubmit)
	router.GET("/register", h.registerForm)
	router.POST("/register", h.registerSubmit)
	router.GET("/logout", h.logout)
}

func (h *Handler) home(c *gin.Context) {
	posts, err := h.posts.ListAll(c.Request.Context())
	if err != nil {
		h.renderError(c, http.StatusInternalServerError, "could not load posts", err)
		return
	}
	c.HTML(http.StatusOK, "home", gin.H{
		"auth":                authFlag(c),
		"homeStartingContent": homeStartingContent,
		"posts":               posts,
	})
}

func (h *Handler) about(c *gin.Context) {
	c.HTML(http.StatusOK, "about", gin.H{
		"auth":         authFlag(c),
		"aboutContent": aboutContent,
	})
}

func (h *Handler) contact(c *gin.Context) {
	c.HTML(http.StatusOK, "contact", gin.H{
		"auth":           authFlag(c),
		"contactContent": contactContent,
	})
}

func (h *Handler) userPosts(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	posts, err := h.posts.ListByAuthor(c.Request.Context(), identity.ID)
	if err != nil {
		h.renderError(c, http.StatusInternalServerError, "could not load posts", err)
		return
	}
	c.HTML(http.StatusOK, "userposts", gin.H{
		"auth":                authFlag(c),
		"userStartingContent": userPostsStartingContent,
		"username":            identity.Username,
		"posts":               posts,
	})
}

func (h *Handler) allPosts(c *gin.Context) {
	username := c.Param("userName")
	posts, err := h.posts.ListByUsername(c.Request.Context(), username)
	if err != nil {
		h.renderError(c, http.StatusInternalServerError, "could not load posts", err)
		return
	}
	c.HTML(http.StatusOK, "allposts", gin.H{
		"auth":     authFlag(c),
		"username": username,
		"posts":    posts,
	})
}

func (h *Handler) postDetail(c *gin.Context) {
	id, ok := h.postID(c)
	if !ok {
		return
	}

	post, err := h.posts.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.renderError(c, http.StatusNotFound, "post not found", nil)
			return
		}
		h.renderError(c, http.StatusInternalServerError, "could not load post", err)
		return
	}

	comments, err := h.comments.ListByPost(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, http.StatusInternalServerError, "could not load comments", err)
		return
	}

	c.HTML(http.StatusOK, "post", gin.H{
		"auth":        authFlag(c),
		"postId":      post.ID,
		"postTitle":   post.Title,
		"postContent": post.Content,
		"user":        post.AuthorUsername,
		"date":        post.Date,
		"comments":    comments,
	})
}

func (h *Handler) composeForm(c *gin.Context) {
	if _, ok := currentIdentity(c); !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	c.HTML(http.StatusOK, "compose", gin.H{"auth": 1})
}

func (h *Handler) composeSubmit(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	title := c.PostForm("blogTitle")
	content := c.PostForm("blogText")

	if _, err := h.posts.Compose(c.Request.Context(), identity, title, content); err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.HTML(http.StatusBadRequest, "compose", gin.H{
				"auth":      1,
				"error":     "title and content are required",
				"blogTitle": title,
				"blogText":  content,
			})
			return
		}
		h.renderError(c, http.StatusInternalServerError, "could not save post", err)
		return
	}
	c.Redirect(http.StatusFound, "/userposts")
}

func (h *Handler) commentSubmit(c *gin.Context) {
	id, ok := h.postID(c)
	if !ok {
		return
	}

	identity, ok := currentIdentity(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if _, err := h.comments.Add(c.Request.Context(), identity, id, c.PostForm("commentText")); err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			// empty comment: back to the post, nothing saved
			c.Redirect(http.StatusFound, "/posts/"+strconv.FormatInt(id, 10))
		case errors.Is(err, service.ErrNotFound):
			h.renderError(c, http.StatusNotFound, "post not found", nil)
		default:
			h.renderError(c, http.StatusInternalServerError, "could not save comment", err)
		}
		return
	}
	c.Redirect(http.StatusFound, "/posts/"+strconv.FormatInt(id, 10))
}

func (h *Handler) updateForm(c *gin.Context) {
	id, ok := h.postID(c)
	if !ok {
		return
	}

	identity, ok := currentIdentity(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	post, err := h.posts.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.renderError(c, http.StatusNotFound, "post not found", nil)
			return
		}
		h.renderError(c, http.StatusInternalServerError, "could not load post", err)
		return
	}
	if post.AuthorID != identity.ID {
		h.renderError(c, http.StatusForbidden, "you can only edit your own posts", nil)
		return
	}

	c.HTML(http.StatusOK, "update", gin.H{
		"auth":        1,
		"postId":      post.ID,
		"postTitle":   post.Title,
		"postContent": post.Content,
	})
}

func (h *Handler) updateSubmit(c *gin.Context) {
	id, ok := h.postID(c)
	if !ok {
		return
	}

	identity, ok := currentIdentity(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	title := c.PostForm("blogTitle")
	content := c.PostForm("blogText")

	if err := h.posts.Update(c.Request.Context(), identity, id, title, content); err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			c.HTML(http.StatusBadRequest, "update", gin.H{
				"auth":        1,
				"error":       "title and content are required",
				"postId":      id,
				"postTitle":   title,
				"postContent": content,
			})
		case errors.Is(err, service.ErrForbidden):
			h.renderError(c, http.StatusForbidden, "you can only edit your own posts", nil)
		case errors.Is(err, service.ErrNotFound):
			h.renderError(c, http.StatusNotFound, "post not found", nil)
		default:
			h.renderError(c, http.StatusInternalServerError, "could not update post", err)
		}
		return
	}
	c.Redirect(http.StatusFound, "/userposts")
}

func (h *Handler) deletePost(c *gin.Context) {
	id, ok := h.postID(c)
	if !ok {
		return
	}

	identity, ok := currentIdentity(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if err := h.posts.Delete(c.Request.Context(), identity, id); err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			h.renderError(c, http.StatusForbidden, "you can only delete your own posts", nil)
		case errors.Is(err, service.ErrNotFound):
			h.renderError(c, http.StatusNotFound, "post not found", nil)
		default:
			h.renderError(c, http.StatusInternalServerError, "could not delete post", err)
		}
		return
	}
	c.Redirect(http.StatusFound, "/userposts")
}

func (h *Handler) loginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login", gin.H{"auth": 0})
}

func (h *Handler) loginSubmit(c *gin.Context) {
	user, err := h.users.Authenticate(c.Request.Context(), c.PostForm("username"), c.PostForm("password"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.Redirect(http.StatusFound, "/login")
			return
		}
		h.renderError(c, http.StatusInternalServerError, "login failed", err)
		return
	}

	if err := h.startSession(c, user); err != nil {
		h.renderError(c, http.StatusInternalServerError, "login failed", err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) registerForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register", gin.H{"auth": 0})
}

func (h *Handler) registerSubmit(c *gin.Context) {
	user, err := h.users.Register(c.Request.Context(), c.PostForm("username"), c.PostForm("password"))
	if err != nil {
		if errors.Is(err, service.ErrDuplicateUsername) || errors.Is(err, service.ErrValidation) {
			c.Redirect(http.StatusFound, "/register")
			return
		}
		h.renderError(c, http.StatusInternalServerError, "registration failed", err)
		return
	}

	if err := h.startSession(c, user); err != nil {
		h.renderError(c, http.StatusInternalServerError, "registration failed", err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) logout(c *gin.Context) {
	if token, err := c.Cookie(h.cookieName); err == nil && token != "" {
		if err := h.sessions.Destroy(c.Request.Context(), token); err != nil {
			h.logger.Warnf("destroy session: %v", err)
		}
	}
	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) startSession(c *gin.Context, user *domain.User) error {
	session, err := h.sessions.Start(c.Request.Context(), user.ID)
	if err != nil {
		return err
	}
	c.SetCookie(h.cookieName, session.Token, int(h.sessionTTL.Seconds()), "/", "", false, true)
	return nil
}

// postID parses the :postId path param; a malformed id renders 404 and
// reports false.
func (h *Handler) postID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("postId"), 10, 64)
	if err != nil || id <= 0 {
		h.renderError(c, http.StatusNotFound, "post not found", nil)
		return 0, false
	}
	return id, true
}

// renderError produces the deterministic failure page; storage errors are
// logged here, never swallowed upstream.
func (h *Handler) renderError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		h.logger.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.HTML(status, "error", gin.H{
		"auth":    authFlag(c),
		"status":  status,
		"message": message,
	})
}
