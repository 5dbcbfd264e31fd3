package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/contactbook-backend/internal/requestdata"
	"github.com/yungbote/contactbook-backend/internal/services"
	"github.com/yungbote/contactbook-backend/internal/types"
)

type AddressHandler struct {
	addressService services.AddressService
}

func NewAddressHandler(addressService services.AddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService}
}

func (ah *AddressHandler) Create(c *gin.Context) {
	user := requestdata.GetUser(c.Request.Context())
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "Unauthorized"})
		return
	}
	var req types.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}
	// Contact id comes from the path, never the body.
	req.ContactID = pathID(c, "id")
	resp, err := ah.addressService.Create(c.Request.Context(), user, &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondData(c, resp)
}

func (ah *AddressHandler) Get(c *gin.Context) {
	user := requestdata.GetUser(c.Request.Context())
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "Unauthorized"})
		return
	}
	req := types.GetAddressRequest{
		ContactID: pathID(c, "id"),
		ID:        pathID(c, "address_id"),
	}
	resp, err := ah.addressService.Get(c.Request.Context(), user, &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondData(c, resp)
}

func (ah *AddressHandler) Update(c *gin.Context) {
	user := requestdata.GetUser(c.Request.Context())
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "Unauthorized"})
		return
	}
	var req types.UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}
	req.ContactID = pathID(c, "id")
	req.ID = pathID(c, "address_id")
	resp, err := ah.addressService.Update(c.Request.Context(), user, &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondData(c, resp)
}

func (ah *AddressHandler) Delete(c *gin.Context) {
	user := requestdata.GetUser(c.Request.Context())
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "Unauthorized"})
		return
	}
	req := types.GetAddressRequest{
		ContactID: pathID(c, "id"),
		ID:        pathID(c, "address_id"),
	}
	if err := ah.addressService.Delete(c.Request.Context(), user, &req); err != nil {
		RespondError(c, err)
		return
	}
	RespondData(c, true)
}
