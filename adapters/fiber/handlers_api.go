package fiber

import (
	"io"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/ecocycle/server/core"
	"github.com/ecocycle/server/services"
)

// ---- Pickups ----

func (s *Server) handleSchedulePickup(c fiber.Ctx) error {
	var input services.SchedulePickupInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid request body",
		})
	}

	pickup, err := s.pickups.Schedule(c.Context(), currentUser(c).ID, input)
	if err != nil {
		return failure(c, err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"pickup":  pickup,
	})
}

func (s *Server) handleListOwnPickups(c fiber.Ctx) error {
	pickups, err := s.pickups.ListOwn(c.Context(), currentUser(c).ID)
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(fiber.Map{"pickups": pickups})
}

func (s *Server) handleListAllPickups(c fiber.Ctx) error {
	pickups, err := s.pickups.ListAll(c.Context(), currentUser(c))
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(fiber.Map{"pickups": pickups})
}

func (s *Server) handleCancelPickup(c fiber.Ctx) error {
	pickup, err := s.pickups.Cancel(c.Context(), currentUser(c).ID, c.Params("id"))
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "pickup": pickup})
}

func (s *Server) handleAdvancePickup(c fiber.Ctx) error {
	pickup, err := s.pickups.Advance(c.Context(), currentUser(c), c.Params("id"))
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "pickup": pickup})
}

// ---- Items ----

func (s *Server) handleDetectItem(c fiber.Ctx) error {
	header, err := c.FormFile("image")
	if err != nil {
		return failure(c, core.ErrImageRequired)
	}

	file, err := header.Open()
	if err != nil {
		return failure(c, core.ErrImageRequired)
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		return failure(c, core.ErrImageRequired)
	}

	item, err := s.items.Detect(c.Context(), currentUser(c).ID, image, header.Filename)
	if err != nil {
		return failure(c, err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"success": true, "item": item})
}

func (s *Server) handleListOwnItems(c fiber.Ctx) error {
	items, err := s.items.ListOwn(c.Context(), currentUser(c).ID)
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(fiber.Map{"items": items})
}

// ---- Rewards ----

func (s *Server) handleRewardBalance(c fiber.Ctx) error {
	summary, err := s.rewards.Balance(c.Context(), currentUser(c).ID)
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(summary)
}

func (s *Server) handleListOffers(c fiber.Ctx) error {
	offers, err := s.rewards.Offers(c.Context())
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(fiber.Map{"offers": offers})
}

func (s *Server) handleRedeemCode(c fiber.Ctx) error {
	var body struct {
		Code string `json:"code"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return failure(c, core.ErrInvalidRedeemCode)
	}

	entry, err := s.rewards.RedeemCode(c.Context(), currentUser(c).ID, body.Code)
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "entry": entry})
}

func (s *Server) handleScanBin(c fiber.Ctx) error {
	entry, err := s.rewards.ScanBin(c.Context(), currentUser(c).ID)
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "entry": entry})
}

func (s *Server) handleRedeemOffer(c fiber.Ctx) error {
	entry, err := s.rewards.RedeemOffer(c.Context(), currentUser(c).ID, c.Params("id"))
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "entry": entry})
}

// ---- Marketplace / assist / diagnostics ----

func (s *Server) handleMarketplace(c fiber.Ctx) error {
	listings, err := s.marketplace.List(c.Context(), c.Query("category"), core.ListingType(c.Query("type")))
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(fiber.Map{"listings": listings})
}

func (s *Server) handleAssist(c fiber.Ctx) error {
	var body struct {
		Message  string `json:"message"`
		Language string `json:"language"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return failure(c, core.ErrMessageRequired)
	}

	response, err := s.assist.Reply(c.Context(), body.Message, body.Language)
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(fiber.Map{"response": response})
}

func (s *Server) handleCacheStats(c fiber.Ctx) error {
	return c.JSON(s.cache.Stats())
}
