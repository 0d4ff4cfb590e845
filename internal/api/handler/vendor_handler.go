package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/marketsquare/vendor-portal/internal/core/ports"
)

// InquiryDispatcher is the interface the handler uses to enqueue inquiries.
type InquiryDispatcher interface {
	Enqueue(inquiry ports.InquiryInput)
}

// VendorHandler serves the public discovery endpoints.
type VendorHandler struct {
	vendors    ports.VendorService
	dispatcher InquiryDispatcher
}

func NewVendorHandler(vendors ports.VendorService, dispatcher InquiryDispatcher) *VendorHandler {
	return &VendorHandler{vendors: vendors, dispatcher: dispatcher}
}

type inquiryRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" validate:"required,max=4000"`
}

type acceptedResponse struct {
	Message string `json:"message"`
}

// List handles GET /vendors — pages through the directory.
func (h *VendorHandler) List(c echo.Context) error {
	filter := ports.ListVendorsFilter{
		Category: c.QueryParam("category"),
		City:     c.QueryParam("city"),
		Search:   c.QueryParam("q"),
		Featured: c.QueryParam("featured") == "true",
	}
	filter.Page, _ = strconv.Atoi(c.QueryParam("page"))
	filter.Limit, _ = strconv.Atoi(c.QueryParam("limit"))

	result, err := h.vendors.ListVendors(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// Get handles GET /vendors/:id.
func (h *VendorHandler) Get(c echo.Context) error {
	vendor, err := h.vendors.GetVendor(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vendor)
}

// CreateInquiry handles POST /vendors/:id/inquiries — accepts a contact
// request and hands it to the dispatcher, returning 202.
func (h *VendorHandler) CreateInquiry(c echo.Context) error {
	var req inquiryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	// Reject unknown vendors up front so the caller gets a 404 instead of a
	// silently dropped inquiry.
	if _, err := h.vendors.GetVendor(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	h.dispatcher.Enqueue(ports.InquiryInput{
		VendorID:   c.Param("id"),
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Message:    req.Message,
		ReceivedAt: time.Now().UTC(),
	})

	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "inquiry accepted"})
}
