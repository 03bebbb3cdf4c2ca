package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// CartLine is one line item added to the storefront cart. Properties
// carry the configuration summary the shopper sees on the cart page.
type CartLine struct {
	VariantID  string
	Quantity   int
	Properties map[string]string
}

type cartAddRequest struct {
	Items []cartAddItem `json:"items"`
}

type cartAddItem struct {
	ID         string            `json:"id"`
	Quantity   int               `json:"quantity"`
	Properties map[string]string `json:"properties,omitempty"`
}

// AddToCart posts the line to the storefront cart endpoint. The variant
// id is the bare numeric id; a GraphQL gid is stripped down first.
func (c *Client) AddToCart(ctx context.Context, line CartLine) error {
	qty := line.Quantity
	if qty < 1 {
		qty = 1
	}

	body, err := json.Marshal(cartAddRequest{
		Items: []cartAddItem{
			{
				ID:         numericID(line.VariantID),
				Quantity:   qty,
				Properties: line.Properties,
			},
		},
	})
	if err != nil {
		return err
	}

	url := strings.TrimRight(c.StoreFront, "/") + "/cart/add.js"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("cart add status %d: %s", resp.StatusCode, raw)
	}
	return nil
}

// numericID turns "gid://shopify/ProductVariant/123" into "123" and
// leaves bare ids untouched.
func numericID(id string) string {
	if i := strings.LastIndex(id, "/"); i >= 0 {
		return id[i+1:]
	}
	return id
}
