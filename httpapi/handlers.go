// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/someonegg/panelmatch"
	"github.com/someonegg/panelmatch/catalog"
	"github.com/someonegg/panelmatch/pricing"
)

type handler struct {
	svc *catalog.Service
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handler) listSuppliers(c *gin.Context) {
	suppliers, err := h.svc.Suppliers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, suppliers)
}

type changeSupplierRequest struct {
	Password string              `json:"password"`
	Action   catalog.Action      `json:"action" binding:"required"`
	Supplier panelmatch.Supplier `json:"supplier"`
}

func (h *handler) changeSupplier(c *gin.Context) {
	var req changeSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, badRequest(err))
		return
	}
	suppliers, err := h.svc.ChangeSupplier(c.Request.Context(), req.Password, req.Action, req.Supplier)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "suppliers": suppliers})
}

func (h *handler) search(c *gin.Context) {
	var q panelmatch.Query
	if err := c.ShouldBindJSON(&q); err != nil {
		respondError(c, badRequest(err))
		return
	}
	results, err := h.svc.Search(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

func (h *handler) getPricing(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Pricing(c.Request.Context()))
}

type savePricingRequest struct {
	Password   string          `json:"password"`
	Pricing    *pricing.Config `json:"pricing"`
	VerifyOnly bool            `json:"verifyOnly"`
}

var errNoPricing = errors.New("missing pricing")

func (h *handler) savePricing(c *gin.Context) {
	var req savePricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, badRequest(err))
		return
	}
	if req.VerifyOnly {
		if err := h.svc.SavePricing(c.Request.Context(), req.Password, pricing.Config{}, true); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "verified": true})
		return
	}
	if req.Pricing == nil {
		respondError(c, badRequest(errNoPricing))
		return
	}
	if err := h.svc.SavePricing(c.Request.Context(), req.Password, *req.Pricing, false); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
