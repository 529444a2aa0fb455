package commerce

//go:generate go run go.uber.org/mock/mockgen -source=./commerce.go -destination=./mocks/commerce_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"parkside/config"
	"parkside/infras/otel"
	"parkside/shared/constant"
	"parkside/shared/failure"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const otelScopeName = constant.OtelExternalScopeName

// Product is a storefront product with its purchasable variants. Variant titles
// follow the "<Room> / <TimeSlot>" convention and SKUs encode the booking date.
type Product struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Handle   string    `json:"handle"`
	Variants []Variant `json:"variants"`
}

type Variant struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	SKU              string `json:"sku"`
	AvailableForSale bool   `json:"availableForSale"`
	Price            Price  `json:"price"`
}

type Price struct {
	Amount string `json:"amount"`
}

// Attribute is a key/value pair attached to a cart line.
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// CartLineInput is the single-line cart payload a submitted booking turns into.
type CartLineInput struct {
	MerchandiseID string      `json:"merchandiseId"`
	Quantity      int         `json:"quantity"`
	Attributes    []Attribute `json:"attributes"`
}

type Cart struct {
	ID          string `json:"id"`
	CheckoutURL string `json:"checkoutUrl"`
}

type CustomerToken struct {
	AccessToken string `json:"accessToken"`
	ExpiresAt   string `json:"expiresAt"`
}

type Customer struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

// Commerce is the storefront GraphQL API boundary. All durable state (products,
// carts, customers) lives on the platform side; this client only reads products
// and hands off single mutations. No retry logic here, failed submissions
// surface to the caller.
type Commerce interface {
	PartyRoomProducts(ctx context.Context) ([]Product, error)
	CartCreate(ctx context.Context, line CartLineInput) (Cart, error)
	CustomerLogin(ctx context.Context, email, password string) (CustomerToken, error)
	Customer(ctx context.Context, accessToken string) (Customer, error)
}

type commerceImpl struct {
	config *config.Config
	client *http.Client
	otel   otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Commerce {
	return &commerceImpl{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.Commerce.TimeoutSeconds) * time.Second,
		},
		otel: ot,
	}
}

const productsQuery = `query PartyRoomProducts($collection: String!) {
  collection(handle: $collection) {
    products(first: 50) {
      nodes {
        id
        title
        handle
        variants(first: 250) {
          nodes { id title sku availableForSale price { amount } }
        }
      }
    }
  }
}`

const cartCreateMutation = `mutation CartCreate($lines: [CartLineInput!]!) {
  cartCreate(input: { lines: $lines }) {
    cart { id checkoutUrl }
    userErrors { field message }
  }
}`

const customerTokenMutation = `mutation CustomerAccessTokenCreate($input: CustomerAccessTokenCreateInput!) {
  customerAccessTokenCreate(input: $input) {
    customerAccessToken { accessToken expiresAt }
    customerUserErrors { message }
  }
}`

const customerQuery = `query Customer($token: String!) {
  customer(customerAccessToken: $token) {
    id email firstName lastName phone
  }
}`

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

func (c *commerceImpl) execute(ctx context.Context, query string, variables map[string]any, out any) (err error) {
	ctx, scope := c.otel.NewScope(ctx, otelScopeName, otelScopeName+".execute")
	defer scope.End()
	defer scope.TraceIfError(err)

	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("failed to marshal GraphQL request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.Commerce.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build GraphQL request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	req.Header.Set(constant.RequestHeaderStorefrontToken, c.config.Commerce.Token)

	resp, err := c.client.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("commerce request failed")

		return fmt.Errorf("commerce request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Error().Int("status", resp.StatusCode).Msg("commerce returned non-200 status")

		return failure.UpstreamError(fmt.Sprintf("commerce platform returned status %d", resp.StatusCode)) //nolint:wrapcheck
	}

	var gqlResp graphQLResponse
	if err = json.NewDecoder(resp.Body).Decode(&gqlResp); err != nil {
		return fmt.Errorf("failed to decode GraphQL response: %w", err)
	}

	if len(gqlResp.Errors) > 0 {
		msgs := make([]string, len(gqlResp.Errors))
		for i, e := range gqlResp.Errors {
			msgs[i] = e.Message
		}

		log.Error().Strs("errors", msgs).Msg("commerce returned GraphQL errors")

		return failure.UpstreamError(strings.Join(msgs, "; ")) //nolint:wrapcheck
	}

	if out != nil {
		if err = json.Unmarshal(gqlResp.Data, out); err != nil {
			return fmt.Errorf("failed to unmarshal GraphQL data: %w", err)
		}
	}

	return nil
}

func (c *commerceImpl) PartyRoomProducts(ctx context.Context) ([]Product, error) {
	var data struct {
		Collection struct {
			Products struct {
				Nodes []struct {
					ID       string `json:"id"`
					Title    string `json:"title"`
					Handle   string `json:"handle"`
					Variants struct {
						Nodes []Variant `json:"nodes"`
					} `json:"variants"`
				} `json:"nodes"`
			} `json:"products"`
		} `json:"collection"`
	}

	err := c.execute(ctx, productsQuery, map[string]any{"collection": c.config.Commerce.Collection}, &data)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch party room products: %w", err)
	}

	products := make([]Product, len(data.Collection.Products.Nodes))
	for i, node := range data.Collection.Products.Nodes {
		products[i] = Product{
			ID:       node.ID,
			Title:    node.Title,
			Handle:   node.Handle,
			Variants: node.Variants.Nodes,
		}
	}

	return products, nil
}

func (c *commerceImpl) CartCreate(ctx context.Context, line CartLineInput) (Cart, error) {
	var data struct {
		CartCreate struct {
			Cart       Cart `json:"cart"`
			UserErrors []struct {
				Message string `json:"message"`
			} `json:"userErrors"`
		} `json:"cartCreate"`
	}

	err := c.execute(ctx, cartCreateMutation, map[string]any{"lines": []CartLineInput{line}}, &data)
	if err != nil {
		return Cart{}, fmt.Errorf("failed to create cart: %w", err)
	}

	if len(data.CartCreate.UserErrors) > 0 {
		return Cart{}, failure.UpstreamError(data.CartCreate.UserErrors[0].Message) //nolint:wrapcheck
	}

	return data.CartCreate.Cart, nil
}

func (c *commerceImpl) CustomerLogin(ctx context.Context, email, password string) (CustomerToken, error) {
	var data struct {
		CustomerAccessTokenCreate struct {
			CustomerAccessToken *CustomerToken `json:"customerAccessToken"`
			CustomerUserErrors  []struct {
				Message string `json:"message"`
			} `json:"customerUserErrors"`
		} `json:"customerAccessTokenCreate"`
	}

	input := map[string]any{"input": map[string]any{"email": email, "password": password}}

	err := c.execute(ctx, customerTokenMutation, input, &data)
	if err != nil {
		return CustomerToken{}, fmt.Errorf("failed to create customer access token: %w", err)
	}

	if data.CustomerAccessTokenCreate.CustomerAccessToken == nil {
		msg := "invalid email or password"
		if len(data.CustomerAccessTokenCreate.CustomerUserErrors) > 0 {
			msg = data.CustomerAccessTokenCreate.CustomerUserErrors[0].Message
		}

		return CustomerToken{}, failure.Unauthorized(msg) //nolint:wrapcheck
	}

	return *data.CustomerAccessTokenCreate.CustomerAccessToken, nil
}

func (c *commerceImpl) Customer(ctx context.Context, accessToken string) (Customer, error) {
	var data struct {
		Customer *Customer `json:"customer"`
	}

	err := c.execute(ctx, customerQuery, map[string]any{"token": accessToken}, &data)
	if err != nil {
		return Customer{}, fmt.Errorf("failed to fetch customer: %w", err)
	}

	if data.Customer == nil {
		return Customer{}, failure.Unauthorized("customer access token is no longer valid") //nolint:wrapcheck
	}

	return *data.Customer, nil
}
