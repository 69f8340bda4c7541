package service

import (
	"math"
	"strconv"
	"strings"

	"github.com/pageza/foodies/backend/internal/models"
	"github.com/pageza/foodies/backend/internal/types"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	// MaxPage keeps (page-1)*limit inside int for every allowed limit.
	MaxPage = math.MaxInt / MaxLimit
)

// Page is a normalized page request
type Page struct {
	Page  int
	Limit int
}

func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

// NormalizePage applies defaults and clamps out of range values
func NormalizePage(q types.PageQuery) Page {
	p := Page{Page: DefaultPage, Limit: DefaultLimit}
	if n, err := strconv.Atoi(strings.TrimSpace(q.Page)); err == nil {
		p.Page = min(max(n, 1), MaxPage)
	}
	if n, err := strconv.Atoi(strings.TrimSpace(q.Limit)); err == nil {
		p.Limit = min(max(n, 1), MaxLimit)
	}
	return p
}

// TotalPages returns ceil(total/limit), or 0 when there is nothing to page
func TotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

func newRecipePage(recipes []models.Recipe, total int64, p Page) *types.RecipePage {
	return &types.RecipePage{
		Recipes:    types.NewRecipeViews(recipes),
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: TotalPages(total, p.Limit),
	}
}
