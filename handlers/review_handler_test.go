package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stayscout/travel_api/database"
	"github.com/stayscout/travel_api/models"
	"github.com/stretchr/testify/require"
)

func TestCreateReview_RatingBounds(t *testing.T) {
	app := setupTestApp(t)
	host := createTestUser(t, "Host User", "host@example.com")
	reviewer := createTestUser(t, "Reviewer", "reviewer@example.com")
	listing := createTestListing(t, host)
	token := tokenFor(t, reviewer)
	path := "/api/v1/listings/" + listing.ID.String() + "/reviews"

	for _, rating := range []int{0, 6, -1} {
		resp := doRequest(t, app, http.MethodPost, path, token, map[string]any{
			"rating":  rating,
			"comment": "out of range",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, "rating %d should be rejected", rating)

		var body struct {
			Errors map[string]string `json:"errors"`
		}
		decodeBody(t, resp, &body)
		require.Contains(t, body.Errors, "rating")
	}

	for _, rating := range []int{1, 5} {
		// A fresh reviewer each time, one review per user per listing.
		user := createTestUser(t, "Extra Reviewer", "extra"+string(rune('a'+rating))+"@example.com")
		resp := doRequest(t, app, http.MethodPost, path, tokenFor(t, user), map[string]any{
			"rating":  rating,
			"comment": "within range",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode, "rating %d should be accepted", rating)
	}
}

func TestCreateReview_AttributionAndDuplicates(t *testing.T) {
	app := setupTestApp(t)
	host := createTestUser(t, "Host User", "host@example.com")
	reviewer := createTestUser(t, "Reviewer", "reviewer@example.com")
	listing := createTestListing(t, host)
	token := tokenFor(t, reviewer)
	path := "/api/v1/listings/" + listing.ID.String() + "/reviews"

	resp := doRequest(t, app, http.MethodPost, path, token, map[string]any{
		"rating":  4,
		"comment": "Great location and very clean.",
		"user_id": host.ID.String(),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var review models.Review
	decodeBody(t, resp, &review)
	require.Equal(t, reviewer.ID, review.UserID)
	require.Equal(t, 4, review.Rating)

	resp = doRequest(t, app, http.MethodPost, path, token, map[string]any{
		"rating":  2,
		"comment": "Changed my mind.",
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	var count int64
	database.DB.Model(&models.Review{}).Count(&count)
	require.EqualValues(t, 1, count)
}

func TestCreateReview_RequiresAuth(t *testing.T) {
	app := setupTestApp(t)
	host := createTestUser(t, "Host User", "host@example.com")
	listing := createTestListing(t, host)

	resp := doRequest(t, app, http.MethodPost, "/api/v1/listings/"+listing.ID.String()+"/reviews", "", map[string]any{
		"rating":  5,
		"comment": "anonymous praise",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestListListingReviews_Open(t *testing.T) {
	app := setupTestApp(t)
	host := createTestUser(t, "Host User", "host@example.com")
	reviewer := createTestUser(t, "Reviewer", "reviewer@example.com")
	listing := createTestListing(t, host)

	review := models.Review{ListingID: listing.ID, UserID: reviewer.ID, Rating: 5, Comment: "Amazing place!"}
	require.NoError(t, database.DB.Create(&review).Error)

	resp := doRequest(t, app, http.MethodGet, "/api/v1/listings/"+listing.ID.String()+"/reviews", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reviews []models.Review
	decodeBody(t, resp, &reviews)
	require.Len(t, reviews, 1)
	require.Equal(t, "Amazing place!", reviews[0].Comment)

	resp = doRequest(t, app, http.MethodGet, "/api/v1/listings/1e6b2c4a-0000-0000-0000-000000000000/reviews", "", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
