package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/azaliaz/bookly-storefront/storefront-service/internal/backend"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/cart"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/domain/consts"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/domain/models"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/logger"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/validation"
)

func (s *Server) AddToCart(ctx *gin.Context) {
	bookID := ctx.PostForm("bookId")
	back := consts.RouteBooks + "/" + bookID
	quantity, err := strconv.Atoi(ctx.DefaultPostForm("quantity", "1"))
	if err != nil {
		quantity = 0
	}
	if err := s.cart.Add(ctx, callerOf(ctx), bookID, quantity); err != nil {
		s.actionFailed(ctx, err, "Failed to add book to cart.", back)
		return
	}
	s.flash(ctx, FlashSuccess, "Book added to cart successfully!")
	ctx.Redirect(http.StatusSeeOther, back)
}

func (s *Server) Cart(ctx *gin.Context) {
	view, err := s.cart.Load(ctx, callerOf(ctx))
	if err != nil {
		s.pageFailed(ctx, err, "Failed to load cart")
		return
	}
	s.render(ctx, http.StatusOK, "cart", page{Title: "Cart", Content: view})
}

func (s *Server) SetQuantity(ctx *gin.Context) {
	quantity, err := strconv.Atoi(ctx.PostForm("quantity"))
	if err != nil {
		quantity = 0
	}
	if _, err := s.cart.SetQuantity(ctx, callerOf(ctx), ctx.Param("id"), quantity); err != nil {
		msg := backend.Message(err, "Failed to update cart")
		if errors.Is(err, cart.ErrInvalidQuantity) {
			msg = "Quantity must be at least 1"
		}
		s.actionFailed(ctx, err, msg, consts.RouteCart)
		return
	}
	ctx.Redirect(http.StatusSeeOther, consts.RouteCart)
}

// ConfirmRemove asks before taking a line out of the cart.
func (s *Server) ConfirmRemove(ctx *gin.Context) {
	id := ctx.Param("id")
	view, err := s.cart.Load(ctx, callerOf(ctx))
	if err != nil {
		s.pageFailed(ctx, err, "Failed to load cart")
		return
	}
	title := ""
	for _, line := range view.Lines {
		if line.Item.Book != nil && line.Item.Book.ID == id {
			title = line.Item.Book.Title
		}
	}
	if title == "" {
		ctx.Redirect(http.StatusSeeOther, consts.RouteCart)
		return
	}
	s.render(ctx, http.StatusOK, "confirm", page{Title: "Remove item", Content: confirmView{
		Message: fmt.Sprintf(`Are you sure you want to remove "%s" from your cart?`, title),
		Action:  ctx.Request.URL.Path,
		Cancel:  consts.RouteCart,
		Label:   "Remove",
	}})
}

func (s *Server) RemoveFromCart(ctx *gin.Context) {
	confirmed := ctx.PostForm("confirmed") == "yes"
	_, err := s.cart.Remove(ctx, callerOf(ctx), ctx.Param("id"), confirmed)
	switch {
	case errors.Is(err, cart.ErrNotConfirmed):
		ctx.Redirect(http.StatusSeeOther, ctx.Request.URL.Path)
	case err != nil:
		s.actionFailed(ctx, err, "Failed to remove item from cart", consts.RouteCart)
	default:
		s.flash(ctx, FlashSuccess, "Item removed from cart successfully")
		ctx.Redirect(http.StatusSeeOther, consts.RouteCart)
	}
}

type paymentOption struct {
	Method models.PaymentMethod
	Label  string
}

var paymentOptions = []paymentOption{
	{models.PaymentCashOnDelivery, "Cash on Delivery"},
	{models.PaymentRazorpay, "Razorpay"},
}

type checkoutView struct {
	Addresses []models.Address
	Selected  string
	Cart      cart.View
	Payments  []paymentOption
}

func (s *Server) CheckoutPage(ctx *gin.Context) {
	c := callerOf(ctx)
	addresses, err := s.Backend.ShowAddresses(ctx, c.Token)
	if err != nil {
		s.pageFailed(ctx, err, "Failed to load addresses.")
		return
	}
	view, err := s.cart.Load(ctx, c)
	if err != nil {
		s.pageFailed(ctx, err, "Failed to load cart items.")
		return
	}
	selected := ""
	for _, a := range addresses {
		if a.IsDefault {
			selected = a.ID
			break
		}
	}
	s.render(ctx, http.StatusOK, "checkout", page{Title: "Checkout", Content: checkoutView{
		Addresses: addresses,
		Selected:  selected,
		Cart:      view,
		Payments:  paymentOptions,
	}})
}

type orderDoneView struct {
	Receipt cart.Receipt
	Cart    cart.View
}

func (s *Server) Checkout(ctx *gin.Context) {
	log := logger.Get()
	release, ok := s.guard(ctx, "checkout", "/checkout")
	if !ok {
		return
	}
	defer release()

	method := models.PaymentMethod(ctx.DefaultPostForm("paymentMethod", string(models.PaymentCashOnDelivery)))
	receipt, err := s.cart.Checkout(ctx, callerOf(ctx), ctx.PostForm("addressId"), method)
	if err != nil {
		var msg string
		switch {
		case errors.Is(err, cart.ErrNoAddressSelected):
			msg = "Please select an address!"
		case errors.Is(err, cart.ErrAddressNotFound):
			msg = "Selected address not found."
		case errors.Is(err, cart.ErrInvalidPaymentMethod):
			msg = "Please select a payment method."
		default:
			msg = backend.Message(err, "Failed to place order. Try again.")
		}
		s.actionFailed(ctx, err, msg, "/checkout")
		return
	}
	log.Info().Str("order", receipt.Order.ID).Str("method", string(method)).Msg("order placed")
	s.flash(ctx, FlashSuccess, "Order placed successfully!")
	s.render(ctx, http.StatusOK, "order_done", page{Title: "Order placed", Content: orderDoneView{
		Receipt: receipt,
		Cart:    cart.View{State: cart.StateSucceeded},
	}})
}

type addressForm struct {
	Street string `form:"street" validate:"trimmin=5"`
	City   string `form:"city" validate:"trimmin=2"`
	State  string `form:"state" validate:"trimmin=2"`
	Zip    string `form:"zip" validate:"trimmin=5"`
}

type addressesView struct {
	Addresses []models.Address
	Form      addressForm
	Errors    validation.FieldErrors
	// Next is where a successful add returns to.
	Next string
}

func safeNext(next string) string {
	if next == "/checkout" {
		return next
	}
	return "/addresses"
}

func (s *Server) Addresses(ctx *gin.Context) {
	c := callerOf(ctx)
	addresses, err := s.Backend.ShowAddresses(ctx, c.Token)
	if err != nil {
		s.pageFailed(ctx, err, "Error fetching addresses")
		return
	}
	s.render(ctx, http.StatusOK, "addresses", page{Title: "Addresses", Content: addressesView{
		Addresses: addresses,
		Next:      safeNext(ctx.Query("next")),
	}})
}

func (s *Server) AddAddress(ctx *gin.Context) {
	log := logger.Get()
	c := callerOf(ctx)
	next := safeNext(ctx.PostForm("next"))

	var form addressForm
	if err := ctx.ShouldBind(&form); err != nil {
		s.actionFailed(ctx, err, "Error adding address", "/addresses")
		return
	}
	if errs := validation.Check(s.valid, form); errs != nil {
		addresses, err := s.Backend.ShowAddresses(ctx, c.Token)
		if err != nil {
			if s.backendFailed(ctx, err) {
				return
			}
			log.Warn().Err(err).Msg("failed to list addresses next to invalid form")
		}
		s.render(ctx, http.StatusBadRequest, "addresses", page{Title: "Addresses", Content: addressesView{
			Addresses: addresses,
			Form:      form,
			Errors:    errs,
			Next:      next,
		}})
		return
	}
	_, err := s.Backend.AddAddress(ctx, c.Token, backend.NewAddress{
		Street: form.Street,
		City:   form.City,
		State:  form.State,
		Zip:    form.Zip,
	})
	if err != nil {
		s.actionFailed(ctx, err, "Error adding address", "/addresses?next="+next)
		return
	}
	s.flash(ctx, FlashSuccess, "Address added successfully")
	ctx.Redirect(http.StatusSeeOther, next)
}
