//go:build e2e

package wishlist_test

import (
	"net/http"
	"testing"

	reqdto "wishlink/internal/handler/dto/request"
	resdto "wishlink/internal/handler/dto/response"
	"wishlink/tests/common/httptest"
	"wishlink/tests/e2e"
	"wishlink/tests/e2e/common/helper"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const wishlistsURL = "/api/wishlists"

type wishlistSuite struct {
	e2e.SharedSuite
}

func TestWishlistSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(wishlistSuite))
}

func (s *wishlistSuite) createWishlist(token, title string) string {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, wishlistsURL, reqdto.CreateWishlistRequest{Title: title}, token)
	require.Equal(t, http.StatusCreated, w.Code, "ウィッシュリスト作成に失敗: %s", w.Body.String())

	var res resdto.CreateWishlistResponse
	httptest.DecodeResponseBody(t, w.Body, &res)
	require.NotEmpty(t, res.ID)
	return res.ID
}

func (s *wishlistSuite) addItem(token, wishlistID, name string, priceCents int64) string {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, wishlistsURL+"/"+wishlistID+"/items", reqdto.AddItemRequest{
		Name:       name,
		PriceCents: priceCents,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, "アイテム追加に失敗: %s", w.Body.String())

	var res resdto.AddItemResponse
	httptest.DecodeResponseBody(t, w.Body, &res)
	return res.ID
}

func (s *wishlistSuite) listItems(wishlistID, guestToken string) []resdto.ItemResponse {
	t := s.T()

	w := httptest.PerformGuestRequest(t, s.Router, http.MethodGet, wishlistsURL+"/"+wishlistID+"/items", nil, "", guestToken)
	require.Equal(t, http.StatusOK, w.Code, "アイテム一覧取得に失敗: %s", w.Body.String())

	var items []resdto.ItemResponse
	httptest.DecodeResponseBody(t, w.Body, &items)
	return items
}

func (s *wishlistSuite) TestWishlistLifecycle() {
	s.Run("作成したリストが一覧と公開ページに現れる", func() {
		t := s.T()

		token := helper.CreateVerifiedUser(t, s.Router, "owner@example.com")
		id := s.createWishlist(token, "Birthday Wishlist")

		// オーナーの一覧
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, wishlistsURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		var lists []resdto.WishlistResponse
		httptest.DecodeResponseBody(t, w.Body, &lists)
		require.Len(t, lists, 1)
		require.Equal(t, id, lists[0].ID)

		// 認証なしの公開ページ
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, wishlistsURL+"/"+id, nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		var view resdto.WishlistResponse
		httptest.DecodeResponseBody(t, w.Body, &view)
		require.Equal(t, "Birthday Wishlist", view.Title)
	})

	s.Run("認証なしでは作成できない", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, wishlistsURL, reqdto.CreateWishlistRequest{Title: "x"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("他人のリストは削除できない", func() {
		t := s.T()

		ownerToken := helper.CreateVerifiedUser(t, s.Router, "owner2@example.com")
		otherToken := helper.CreateVerifiedUser(t, s.Router, "other@example.com")
		id := s.createWishlist(ownerToken, "Private List")

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, wishlistsURL+"/"+id, nil, otherToken)
		require.Equal(t, http.StatusForbidden, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, wishlistsURL+"/"+id, nil, ownerToken)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, wishlistsURL+"/"+id, nil, "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("リスト削除でアイテムと貢献も消える", func() {
		t := s.T()

		token := helper.CreateVerifiedUser(t, s.Router, "cascade@example.com")
		id := s.createWishlist(token, "Cascade List")
		itemID := s.addItem(token, id, "Headphones", 12000)

		w := httptest.PerformGuestRequest(t, s.Router, http.MethodPost, "/api/items/"+itemID+"/contributions", reqdto.AddContributionRequest{
			AmountCents:     2000,
			ContributorName: "Alice",
		}, "", "guest-a")
		require.Equal(t, http.StatusCreated, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, wishlistsURL+"/"+id, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		var count int
		err := s.DB.QueryRow(t.Context(), "SELECT count(*) FROM contributions").Scan(&count)
		require.NoError(t, err)
		require.Zero(t, count, "貢献が連鎖削除されていない")
	})
}

func (s *wishlistSuite) TestReservationFlow() {
	s.Run("ゲストが予約してもう一度押すと解除される", func() {
		t := s.T()

		token := helper.CreateVerifiedUser(t, s.Router, "reserve@example.com")
		id := s.createWishlist(token, "Reservable")
		itemID := s.addItem(token, id, "Board Game", 4500)

		reservationURL := "/api/items/" + itemID + "/reservation"

		w := httptest.PerformGuestRequest(t, s.Router, http.MethodPost, reservationURL, nil, "", "guest-a")
		require.Equal(t, http.StatusOK, w.Code)
		var toggle resdto.ToggleReservationResponse
		httptest.DecodeResponseBody(t, w.Body, &toggle)
		require.True(t, toggle.Reserved)

		// 本人には reserved_by_self、他人には reserved_by_other
		items := s.listItems(id, "guest-a")
		require.Len(t, items, 1)
		require.Equal(t, "reserved_by_self", items[0].ReservationState)

		items = s.listItems(id, "guest-b")
		require.Equal(t, "reserved_by_other", items[0].ReservationState)

		// 再度トグルで解除
		w = httptest.PerformGuestRequest(t, s.Router, http.MethodPost, reservationURL, nil, "", "guest-a")
		require.Equal(t, http.StatusOK, w.Code)
		httptest.DecodeResponseBody(t, w.Body, &toggle)
		require.False(t, toggle.Reserved)

		items = s.listItems(id, "guest-b")
		require.Equal(t, "open", items[0].ReservationState)
	})

	s.Run("ゲストトークンなしでは予約できない", func() {
		t := s.T()

		token := helper.CreateVerifiedUser(t, s.Router, "noguest@example.com")
		id := s.createWishlist(token, "No Guest")
		itemID := s.addItem(token, id, "Puzzle", 2500)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/items/"+itemID+"/reservation", nil, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("他のゲストの予約は横取りできる", func() {
		t := s.T()

		token := helper.CreateVerifiedUser(t, s.Router, "takeover@example.com")
		id := s.createWishlist(token, "Takeover")
		itemID := s.addItem(token, id, "Plant", 3000)

		reservationURL := "/api/items/" + itemID + "/reservation"

		w := httptest.PerformGuestRequest(t, s.Router, http.MethodPost, reservationURL, nil, "", "guest-a")
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformGuestRequest(t, s.Router, http.MethodPost, reservationURL, nil, "", "guest-b")
		require.Equal(t, http.StatusOK, w.Code)

		items := s.listItems(id, "guest-b")
		require.Equal(t, "reserved_by_self", items[0].ReservationState)
	})
}

func (s *wishlistSuite) TestContributionFlow() {
	s.Run("貢献が積み上がり達成率に反映される", func() {
		t := s.T()

		token := helper.CreateVerifiedUser(t, s.Router, "fund@example.com")
		id := s.createWishlist(token, "Funding")
		itemID := s.addItem(token, id, "Espresso Machine", 10000)

		contributionsURL := "/api/items/" + itemID + "/contributions"

		w := httptest.PerformGuestRequest(t, s.Router, http.MethodPost, contributionsURL, reqdto.AddContributionRequest{
			AmountCents:     4000,
			ContributorName: "Alice",
		}, "", "guest-a")
		require.Equal(t, http.StatusCreated, w.Code)

		items := s.listItems(id, "")
		require.Equal(t, int64(4000), items[0].FundedAmountCents)
		require.InDelta(t, 40.0, items[0].FundedPercent, 0.01)
		require.False(t, items[0].IsFunded)

		w = httptest.PerformGuestRequest(t, s.Router, http.MethodPost, contributionsURL, reqdto.AddContributionRequest{
			AmountCents: 6000,
		}, "", "guest-b")
		require.Equal(t, http.StatusCreated, w.Code)

		items = s.listItems(id, "")
		require.Equal(t, int64(10000), items[0].FundedAmountCents)
		require.InDelta(t, 100.0, items[0].FundedPercent, 0.01)
		require.True(t, items[0].IsFunded)

		// 名前を省略した貢献にはデフォルト名が付く
		var name string
		err := s.DB.QueryRow(t.Context(),
			"SELECT contributor_name FROM contributions WHERE amount_cents = 6000").Scan(&name)
		require.NoError(t, err)
		require.Equal(t, "Guest", name)
	})

	s.Run("不正な金額は拒否される", func() {
		t := s.T()

		token := helper.CreateVerifiedUser(t, s.Router, "badamount@example.com")
		id := s.createWishlist(token, "Bad Amount")
		itemID := s.addItem(token, id, "Mug", 1500)

		w := httptest.PerformGuestRequest(t, s.Router, http.MethodPost, "/api/items/"+itemID+"/contributions", reqdto.AddContributionRequest{
			AmountCents: -500,
		}, "", "guest-a")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("存在しないアイテムへの貢献は404", func() {
		t := s.T()

		w := httptest.PerformGuestRequest(t, s.Router, http.MethodPost, "/api/items/00000000-0000-0000-0000-000000000000/contributions", reqdto.AddContributionRequest{
			AmountCents: 1000,
		}, "", "guest-a")
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
