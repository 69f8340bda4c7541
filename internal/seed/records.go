package seed

type userRecord struct {
	ID     LegacyID `json:"_id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Avatar *string  `json:"avatar"`
}

type categoryRecord struct {
	ID   LegacyID `json:"_id"`
	Name string   `json:"name"`
}

type areaRecord struct {
	ID   LegacyID `json:"_id"`
	Name string   `json:"name"`
}

type ingredientRecord struct {
	ID   LegacyID `json:"_id"`
	Name string   `json:"name"`
	Desc string   `json:"desc"`
	Img  string   `json:"img"`
}

type recipeIngredientRecord struct {
	ID      LegacyID `json:"id"`
	Measure string   `json:"measure"`
}

type recipeRecord struct {
	ID           LegacyID                 `json:"_id"`
	Title        string                   `json:"title"`
	Category     string                   `json:"category"`
	Area         string                   `json:"area"`
	Owner        LegacyID                 `json:"owner"`
	Instructions string                   `json:"instructions"`
	Thumb        string                   `json:"thumb"`
	Time         string                   `json:"time"`
	Ingredients  []recipeIngredientRecord `json:"ingredients"`
}

type testimonialRecord struct {
	ID          LegacyID `json:"_id"`
	Owner       LegacyID `json:"owner"`
	Testimonial string   `json:"testimonial"`
}
