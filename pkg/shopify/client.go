// Package shopify talks to the commerce platform: creating the
// purchasable product for a submitted configuration and putting it into
// the shopper's cart. Calls can take seconds; every method takes a
// context and is awaited before the submission sequence continues.
package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Client struct {
	ShopDomain string // e.g. "kellerfensteronline.myshopify.com"
	AdminToken string
	APIVersion string
	StoreFront string // public storefront base URL for cart calls
	HTTPClient *http.Client
}

func NewClient(shopDomain, adminToken, storefrontURL string) *Client {
	return &Client{
		ShopDomain: shopDomain,
		AdminToken: adminToken,
		APIVersion: "2024-10",
		StoreFront: storefrontURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// CreatedItem identifies the product/variant materialized for one
// submitted configuration.
type CreatedItem struct {
	ProductID string
	Title     string
	Handle    string
	VariantID string
}

// ItemInput describes the purchasable item to create: an assembled
// display title, the human-readable option name/value pairs, the final
// unit price and an optional product image.
type ItemInput struct {
	Title     string
	Options   []ItemOption
	UnitPrice float64
	ImageURL  string
}

type ItemOption struct {
	Name  string
	Value string
}

// --- Admin GraphQL wire structs (internal to this package) ---

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type productCreateResponse struct {
	Data struct {
		ProductCreate struct {
			Product *struct {
				Id       string `json:"id"`
				Title    string `json:"title"`
				Handle   string `json:"handle"`
				Variants struct {
					Edges []struct {
						Node struct {
							Id string `json:"id"`
						} `json:"node"`
					} `json:"edges"`
				} `json:"variants"`
			} `json:"product"`
			UserErrors []struct {
				Field   []string `json:"field"`
				Message string   `json:"message"`
			} `json:"userErrors"`
		} `json:"productCreate"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

const productCreateMutation = `
mutation productCreate($product: ProductCreateInput!, $media: [CreateMediaInput!]) {
  productCreate(product: $product, media: $media) {
    product {
      id
      title
      handle
      variants(first: 1) {
        edges {
          node {
            id
          }
        }
      }
    }
    userErrors {
      field
      message
    }
  }
}`

// CreateItem creates an active, untracked product with a single variant
// priced at the calculated total. The variant sells past zero stock;
// every configuration is made to order.
func (c *Client) CreateItem(ctx context.Context, input ItemInput) (*CreatedItem, error) {
	options := make([]map[string]interface{}, 0, len(input.Options))
	for _, opt := range input.Options {
		options = append(options, map[string]interface{}{
			"name":   opt.Name,
			"values": []map[string]string{{"name": opt.Value}},
		})
	}

	variables := map[string]interface{}{
		"product": map[string]interface{}{
			"title":          input.Title,
			"productOptions": options,
			"status":         "ACTIVE",
			"variants": []map[string]interface{}{
				{
					"price":           fmt.Sprintf("%.2f", input.UnitPrice),
					"inventoryPolicy": "CONTINUE",
				},
			},
		},
	}
	if input.ImageURL != "" {
		variables["media"] = []map[string]interface{}{
			{
				"originalSource":   input.ImageURL,
				"mediaContentType": "IMAGE",
			},
		}
	}

	reqBody := graphqlRequest{
		Query:     productCreateMutation,
		Variables: variables,
	}

	var resp productCreateResponse
	if err := c.adminGraphQL(ctx, reqBody, &resp); err != nil {
		return nil, err
	}

	if len(resp.Errors) > 0 {
		return nil, fmt.Errorf("productCreate: %s", resp.Errors[0].Message)
	}
	if errs := resp.Data.ProductCreate.UserErrors; len(errs) > 0 {
		return nil, fmt.Errorf("productCreate: %s", errs[0].Message)
	}
	product := resp.Data.ProductCreate.Product
	if product == nil || len(product.Variants.Edges) == 0 {
		return nil, fmt.Errorf("productCreate: no product returned")
	}

	return &CreatedItem{
		ProductID: product.Id,
		Title:     product.Title,
		Handle:    product.Handle,
		VariantID: product.Variants.Edges[0].Node.Id,
	}, nil
}

func (c *Client) adminGraphQL(ctx context.Context, body graphqlRequest, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("https://%s/admin/api/%s/graphql.json", c.ShopDomain, c.APIVersion)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.AdminToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("admin API status %d: %s", resp.StatusCode, raw)
	}

	return json.Unmarshal(raw, out)
}
