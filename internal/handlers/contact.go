package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/contactbook-backend/internal/requestdata"
	"github.com/yungbote/contactbook-backend/internal/services"
	"github.com/yungbote/contactbook-backend/internal/types"
	"github.com/yungbote/contactbook-backend/internal/validation"
)

type ContactHandler struct {
	contactService services.ContactService
}

func NewContactHandler(contactService services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// pathID tolerates garbage: a non-numeric segment parses to 0 and fails the
// positive-id validation downstream.
func pathID(c *gin.Context, name string) int64 {
	id, _ := strconv.ParseInt(c.Param(name), 10, 64)
	return id
}

func (ch *ContactHandler) Create(c *gin.Context) {
	user := requestdata.GetUser(c.Request.Context())
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "Unauthorized"})
		return
	}
	var req types.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}
	resp, err := ch.contactService.Create(c.Request.Context(), user, &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondData(c, resp)
}

func (ch *ContactHandler) Get(c *gin.Context) {
	user := requestdata.GetUser(c.Request.Context())
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "Unauthorized"})
		return
	}
	resp, err := ch.contactService.Get(c.Request.Context(), user, pathID(c, "id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondData(c, resp)
}

func (ch *ContactHandler) Update(c *gin.Context) {
	user := requestdata.GetUser(c.Request.Context())
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "Unauthorized"})
		return
	}
	var req types.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}
	req.ID = pathID(c, "id")
	resp, err := ch.contactService.Update(c.Request.Context(), user, &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondData(c, resp)
}

func (ch *ContactHandler) Delete(c *gin.Context) {
	user := requestdata.GetUser(c.Request.Context())
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "Unauthorized"})
		return
	}
	if err := ch.contactService.Delete(c.Request.Context(), user, pathID(c, "id")); err != nil {
		RespondError(c, err)
		return
	}
	RespondData(c, true)
}

func (ch *ContactHandler) Search(c *gin.Context) {
	user := requestdata.GetUser(c.Request.Context())
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "Unauthorized"})
		return
	}
	req := types.SearchContactRequest{
		Name:  c.Query("name"),
		Email: c.Query("email"),
		Phone: c.Query("phone"),
		Page:  queryInt(c, "page", 1),
		Size:  queryInt(c, "size", validation.DefaultPageSize),
	}
	resp, err := ch.contactService.Search(c.Request.Context(), user, &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func queryInt(c *gin.Context, name string, defaultVal int) int {
	raw := c.Query(name)
	if raw == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	return v
}
