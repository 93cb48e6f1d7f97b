package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "tradepost/internal/log"
	"tradepost/internal/services"
	"tradepost/internal/validate"
)

type AccountHandler struct {
	Accounts *services.AccountService
}

type signupRequest struct {
	Name     string `json:"name"`
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

func (h *AccountHandler) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return respondFail(c, fiber.StatusBadRequest, "Invalid request body.")
	}
	if v := validate.Signup(req.Name, req.Mobile, req.Password); !v.OK {
		applog.Security(c, "validation.fail", map[string]any{"op": "signup", "reason": v.Message})
		return respondFail(c, fiber.StatusBadRequest, v.Message)
	}

	account, err := h.Accounts.Signup(req.Name, req.Mobile, req.Password, req.Email)
	if err != nil {
		return respondErr(c, "account.signup.error", err)
	}

	applog.Audit(c, "account.signup", map[string]any{"account_id": account.ID})
	return respond(c, fiber.StatusCreated, "User signed up successfully!", account)
}

type loginRequest struct {
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

func (h *AccountHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondFail(c, fiber.StatusBadRequest, "Invalid request body.")
	}
	if v := validate.Login(req.Mobile, req.Password); !v.OK {
		return respondFail(c, fiber.StatusBadRequest, v.Message)
	}

	token, account, err := h.Accounts.Login(req.Mobile, req.Password)
	if err != nil {
		applog.Security(c, "account.login.fail", map[string]any{"mobile": req.Mobile})
		return respondErr(c, "account.login.error", err)
	}

	applog.Audit(c, "account.login", map[string]any{"account_id": account.ID})
	return respond(c, fiber.StatusOK, "Login successful.", fiber.Map{
		"token": token,
		"user":  account,
	})
}

func (h *AccountHandler) EditProfile(c *fiber.Ctx) error {
	payload := map[string]any{}
	if err := c.BodyParser(&payload); err != nil {
		return respondFail(c, fiber.StatusBadRequest, "Invalid request body.")
	}

	account, err := h.Accounts.EditProfile(callerID(c), payload)
	if err != nil {
		return respondErr(c, "account.edit.error", err)
	}

	applog.Audit(c, "account.edit", nil)
	return respond(c, fiber.StatusOK, "Profile updated successfully.", account)
}
