package api

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/velmariner/rentora/internal/services"
)

func (handler *Handler) ListProperties(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	properties, err := handler.visibleProperties(user)
	if err != nil {
		return failRedirect(c, "/dashboard", err)
	}
	return handler.render(c, "properties_list", fiber.Map{
		"Title":      "Properties",
		"Properties": properties,
	})
}

func (handler *Handler) ShowAddProperty(c *fiber.Ctx) error {
	return handler.render(c, "property_form", fiber.Map{
		"Title":  "Add Property",
		"Action": "/properties/add",
	})
}

func (handler *Handler) AddProperty(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	input, err := propertyInputFromForm(c)
	if err != nil {
		return failRedirect(c, "/properties/add", err)
	}
	imagePath, err := handler.storeUploadedImage(c)
	if err != nil {
		return failRedirect(c, "/properties/add", err)
	}

	if _, err := handler.propertyService.Create(user, input, imagePath); err != nil {
		return failRedirect(c, "/properties/add", err)
	}
	return redirectWithFlash(c, "/properties", "Property added successfully.", flashCategorySuccess)
}

func (handler *Handler) ShowEditProperty(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	propertyID, err := paramID(c)
	if err != nil {
		return failRedirect(c, "/properties", err)
	}

	property, err := handler.propertyService.Get(user, propertyID)
	if err != nil {
		return failRedirect(c, "/properties", err)
	}
	return handler.render(c, "property_form", fiber.Map{
		"Title":    "Edit Property",
		"Action":   "/properties/edit/" + c.Params("id"),
		"Property": property,
	})
}

func (handler *Handler) EditProperty(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	propertyID, err := paramID(c)
	if err != nil {
		return failRedirect(c, "/properties", err)
	}

	input, err := propertyInputFromForm(c)
	if err != nil {
		return failRedirect(c, "/properties/edit/"+c.Params("id"), err)
	}
	imagePath, err := handler.storeUploadedImage(c)
	if err != nil {
		return failRedirect(c, "/properties/edit/"+c.Params("id"), err)
	}

	if _, err := handler.propertyService.Update(user, propertyID, input, imagePath); err != nil {
		return failRedirect(c, "/properties", err)
	}
	return redirectWithFlash(c, "/properties", "Property updated successfully.", flashCategorySuccess)
}

func (handler *Handler) ViewProperty(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	propertyID, err := paramID(c)
	if err != nil {
		return failRedirect(c, "/properties", err)
	}

	property, err := handler.propertyService.Get(user, propertyID)
	if err != nil {
		return failRedirect(c, "/properties", err)
	}
	return handler.render(c, "property_view", fiber.Map{
		"Title":    property.Address,
		"Property": property,
	})
}

func (handler *Handler) DeleteProperty(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	propertyID, err := paramID(c)
	if err != nil {
		return failRedirect(c, "/properties", err)
	}

	if err := handler.propertyService.Delete(user, propertyID); err != nil {
		return failRedirect(c, "/properties", err)
	}
	return redirectWithFlash(c, "/properties", "Property deleted successfully.", flashCategorySuccess)
}

func propertyInputFromForm(c *fiber.Ctx) (services.PropertyInput, error) {
	rentAmount, err := formFloat(c, "rent_amount")
	if err != nil {
		return services.PropertyInput{}, err
	}
	bedrooms, err := formOptionalInt(c, "bedrooms")
	if err != nil {
		return services.PropertyInput{}, err
	}
	bathrooms, err := formOptionalInt(c, "bathrooms")
	if err != nil {
		return services.PropertyInput{}, err
	}
	areaSqft, err := formOptionalFloat(c, "area_sqft")
	if err != nil {
		return services.PropertyInput{}, err
	}

	return services.PropertyInput{
		PropertyType:       c.FormValue("property_type"),
		Address:            c.FormValue("address"),
		City:               c.FormValue("city"),
		State:              c.FormValue("state"),
		RentAmount:         rentAmount,
		AvailabilityStatus: c.FormValue("availability_status"),
		Description:        c.FormValue("description"),
		Bedrooms:           bedrooms,
		Bathrooms:          bathrooms,
		AreaSqft:           areaSqft,
	}, nil
}

// storeUploadedImage saves an attached image and returns its stored name. No
// file, or a file with a disallowed extension, yields an empty path without
// failing the request.
func (handler *Handler) storeUploadedImage(c *fiber.Ctx) (string, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil || fileHeader == nil || fileHeader.Filename == "" {
		return "", nil
	}
	if !handler.uploads.Allowed(fileHeader.Filename) {
		log.Printf("properties: rejected upload with disallowed extension: %s", fileHeader.Filename)
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", &services.StorageError{Op: "open uploaded image", Err: err}
	}
	defer file.Close()

	storedName, err := handler.uploads.Save(fileHeader.Filename, file)
	if err != nil {
		return "", &services.StorageError{Op: "store uploaded image", Err: err}
	}
	return storedName, nil
}
