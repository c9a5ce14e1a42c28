package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rentmart/rentmart/internal/logger"
	"github.com/rentmart/rentmart/internal/services"
)

// ProductCreator defines the interface that the catalog service must implement.
type ProductCreator interface {
	Create(ctx context.Context, name, description string, price float64, image *string) (uuid.UUID, error)
}

// ImageSaver persists an uploaded product image and returns the stored filename.
type ImageSaver interface {
	Save(originalName string, r io.Reader) (string, error)
}

// productForm holds the parsed multipart product fields.
type productForm struct {
	name        string
	description string
	price       float64
	image       *string
}

// parseProductForm reads the multipart product form and stores the uploaded
// image, if any. A non-empty clientMsg means the request was malformed.
func parseProductForm(r *http.Request, images ImageSaver) (form *productForm, clientMsg string, err error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, "Invalid multipart form", nil
	}

	name := strings.TrimSpace(r.FormValue("name"))
	description := strings.TrimSpace(r.FormValue("description"))
	if name == "" || description == "" {
		return nil, "Name and description are required", nil
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue("price")), 64)
	if err != nil {
		return nil, "Price must be a number", nil
	}

	form = &productForm{
		name:        name,
		description: description,
		price:       price,
	}

	file, header, err := r.FormFile("image")
	switch {
	case err == nil:
		defer file.Close()
		stored, saveErr := images.Save(header.Filename, file)
		if saveErr != nil {
			return nil, "", saveErr
		}
		form.image = &stored
	case errors.Is(err, http.ErrMissingFile):
		// Image is optional.
	default:
		return nil, "Invalid image upload", nil
	}

	return form, "", nil
}

// AddProductResponse represents a successful product creation response
// swagger:model AddProductResponse
type AddProductResponse struct {
	// Success message
	// default: Product added successfully
	Message string `json:"message"`

	// ID of the created product
	ProductID uuid.UUID `json:"product_id"`
}

// AddProductErrorResponse represents an error response for product creation
// swagger:model AddProductErrorResponse
type AddProductErrorResponse struct {
	// Error message
	// default: Price must be a positive number
	Error string `json:"error"`
}

// ProductFormResponse describes the fields the product form accepts.
// swagger:model ProductFormResponse
type ProductFormResponse struct {
	// Accepted multipart form fields
	Fields []string `json:"fields"`
}

// NewAddProductFormHandler returns the form schema for product creation. The
// original server rendered an HTML form here; the API equivalent is the
// field list.
// @Summary Product creation form
// @Description Describes the multipart fields accepted by POST /addProduct
// @Tags catalog
// @Produce json
// @Success 200 {object} handlers.ProductFormResponse "Form schema"
// @Router /addProduct [get]
// @Security BearerAuth
func NewAddProductFormHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ProductFormResponse{
			Fields: []string{"name", "description", "price", "image"},
		})
	}
}

// NewAddProductHandler returns an HTTP handler for creating a product with
// an optional image upload.
// @Summary Add a product
// @Description Creates a product from a multipart form with an optional image. Requires the admin role.
// @Tags catalog
// @Accept mpfd
// @Produce json
// @Param name formData string true "Product name"
// @Param description formData string true "Product description"
// @Param price formData number true "Rental price, positive"
// @Param image formData file false "Product image"
// @Success 201 {object} handlers.AddProductResponse "Product created"
// @Failure 400 {object} handlers.AddProductErrorResponse "Invalid form data"
// @Failure 403 {object} handlers.AddProductErrorResponse "Admin access required"
// @Router /addProduct [post]
// @Security BearerAuth
func NewAddProductHandler(svc ProductCreator, images ImageSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, clientMsg, err := parseProductForm(r, images)
		if err != nil {
			logger.Log.Errorw("failed to store uploaded image", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AddProductErrorResponse{Error: "Internal server error"})
			return
		}
		if clientMsg != "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AddProductErrorResponse{Error: clientMsg})
			return
		}

		productID, err := svc.Create(r.Context(), form.name, form.description, form.price, form.image)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidProduct), errors.Is(err, services.ErrInvalidPrice):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(AddProductErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("failed to create product", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(AddProductErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(AddProductResponse{
			Message:   "Product added successfully",
			ProductID: productID,
		})
	}
}
