package handlers

import (
	"log/slog"
	"net/http"

	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	portssvc "github.com/agarrido2001/XaveMarket/internal/core/ports/services"
	"github.com/agarrido2001/XaveMarket/internal/dto"
	"github.com/agarrido2001/XaveMarket/internal/middleware"
	"github.com/gin-gonic/gin"
)

type collectionHandler struct {
	collectionService portssvc.CollectionSvcFacade
}

func newCollectionHandler(cs portssvc.CollectionSvcFacade) *collectionHandler {
	return &collectionHandler{collectionService: cs}
}

// registerCollectionRoutes registers the item registry routes and returns the
// group nested routes hang off.
func registerCollectionRoutes(rg *gin.RouterGroup, collectionService portssvc.CollectionSvcFacade) *gin.RouterGroup {
	h := newCollectionHandler(collectionService)

	collections := rg.Group("/collections")
	{
		collections.POST("", h.addCollection)
		collections.GET("", h.listCollections)
		collections.GET("/:address", h.getCollection)
		collections.DELETE("/:address", h.removeCollection)
	}
	return collections
}

// addCollection godoc
// @Summary Register a collection
// @Description Registers an item contract. When currencies and amounts are given the default prices are set in the same transaction (NFT_ADMIN)
// @Tags collections
// @Accept  json
// @Produce  json
// @Param   collection body dto.AddCollectionRequest true "Collection contract"
// @Success 201 {object} dto.CollectionResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid collection or prices"
// @Failure 403 {object} handlers.ErrorResponse "Caller lacks NFT_ADMIN"
// @Failure 409 {object} handlers.ErrorResponse "Collection already registered"
// @Security BearerAuth
// @Router /collections [post]
func (h *collectionHandler) addCollection(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AddCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	logger.Info("Received request to add collection",
		slog.String("collection", req.Address.String()), slog.Bool("withPrices", req.WithPrices()))

	var (
		collection *domain.Collection
		err        error
	)
	if req.WithPrices() {
		collection, err = h.collectionService.AddCollectionWithPrices(c.Request.Context(), caller, req, req.Currencies, req.Amounts)
	} else {
		collection, err = h.collectionService.AddCollection(c.Request.Context(), caller, req)
	}
	if err != nil {
		respondError(c, err, "Add collection")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCollectionResponse(collection))
}

// listCollections godoc
// @Summary List collections
// @Description Lists registered collections in registration order
// @Tags collections
// @Produce  json
// @Success 200 {array} dto.CollectionResponse
// @Security BearerAuth
// @Router /collections [get]
func (h *collectionHandler) listCollections(c *gin.Context) {
	collections, err := h.collectionService.ListCollections(c.Request.Context())
	if err != nil {
		respondError(c, err, "List collections")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCollectionResponse(collections))
}

// getCollection godoc
// @Summary Get a collection
// @Tags collections
// @Produce  json
// @Param   address path string true "Collection contract address"
// @Success 200 {object} dto.CollectionResponse
// @Failure 404 {object} handlers.ErrorResponse "Collection not registered"
// @Security BearerAuth
// @Router /collections/{address} [get]
func (h *collectionHandler) getCollection(c *gin.Context) {
	collection, ok := addressParam(c, "address")
	if !ok {
		return
	}
	found, err := h.collectionService.GetCollection(c.Request.Context(), collection)
	if err != nil {
		respondError(c, err, "Get collection")
		return
	}
	c.JSON(http.StatusOK, dto.ToCollectionResponse(found))
}

// removeCollection godoc
// @Summary Unregister a collection
// @Description Removes a collection; refused while any of its tokens are listed (NFT_ADMIN)
// @Tags collections
// @Param   address path string true "Collection contract address"
// @Success 204 "No Content"
// @Failure 404 {object} handlers.ErrorResponse "Collection not registered"
// @Failure 422 {object} handlers.ErrorResponse "Collection has listed tokens"
// @Security BearerAuth
// @Router /collections/{address} [delete]
func (h *collectionHandler) removeCollection(c *gin.Context) {
	collection, ok := addressParam(c, "address")
	if !ok {
		return
	}
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	if err := h.collectionService.RemoveCollection(c.Request.Context(), caller, collection); err != nil {
		respondError(c, err, "Remove collection")
		return
	}
	c.Status(http.StatusNoContent)
}
