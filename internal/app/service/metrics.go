package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recipesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recipes_created_total",
			Help: "Total number of recipes created, including bulk imports",
		},
	)

	recipeViews = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recipe_views_total",
			Help: "Total number of successful recipe detail views",
		},
	)
)
