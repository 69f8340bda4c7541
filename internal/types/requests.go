package types

// RegisterRequest represents the request body for registration
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RecipeIngredientInput struct {
	IngredientID string `json:"ingredientId" binding:"required,uuid"`
	Measure      string `json:"measure" binding:"required,max=100"`
}

// CreateRecipeRequest is bound from JSON or from multipart form values.
// In multipart requests ingredients arrive as a JSON encoded array.
type CreateRecipeRequest struct {
	Title        string                  `json:"title" form:"title" binding:"required,min=3,max=100"`
	CategoryID   string                  `json:"categoryId" form:"categoryId" binding:"required,uuid"`
	AreaID       string                  `json:"areaId" form:"areaId" binding:"required,uuid"`
	Instructions string                  `json:"instructions" form:"instructions" binding:"required,min=10"`
	Time         string                  `json:"time" form:"time" binding:"omitempty,max=50"`
	Ingredients  []RecipeIngredientInput `json:"ingredients" form:"-" binding:"required,min=1,dive"`
}

// RecipeFilter holds the optional search filters as received in the query string
type RecipeFilter struct {
	Category   string `form:"category"`
	Area       string `form:"area"`
	Ingredient string `form:"ingredient"`
}

// PageQuery is the raw paging input; invalid values fall back to defaults
type PageQuery struct {
	Page  string `form:"page"`
	Limit string `form:"limit"`
}
