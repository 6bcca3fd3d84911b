package paylane

import (
	"context"
	"net/http"
)

// operation is one gateway action: a fixed relative path and the wire
// method it is sent with.
type operation struct {
	name   string
	path   string
	method string
}

// The gateway's operation table. Paths are appended to the base URL
// verbatim. Some lookup operations use GET while still carrying a JSON
// body; the gateway expects exactly that, so the wire method is forced
// independently of the body (see call).
var (
	opCardSale                 = operation{"card_sale", "cards/sale", http.MethodPost}
	opCardSaleByToken          = operation{"card_sale_by_token", "cards/saleByToken", http.MethodPost}
	opCardAuthorization        = operation{"card_authorization", "cards/authorization", http.MethodPost}
	opCardAuthorizationByToken = operation{"card_authorization_by_token", "cards/authorizationByToken", http.MethodPost}
	opCheckCard                = operation{"check_card", "cards/check", http.MethodGet}
	opCheckCardByToken         = operation{"check_card_by_token", "cards/checkByToken", http.MethodGet}

	opPayPalSale          = operation{"paypal_sale", "paypal/sale", http.MethodPost}
	opPayPalAuthorization = operation{"paypal_authorization", "paypal/authorization", http.MethodPost}
	opPayPalStopRecurring = operation{"paypal_stop_recurring", "paypal/stopRecurring", http.MethodPost}

	opCaptureAuthorization = operation{"capture_authorization", "authorizations/capture", http.MethodPost}
	opCloseAuthorization   = operation{"close_authorization", "authorizations/close", http.MethodPost}
	opGetAuthorizationInfo = operation{"get_authorization_info", "authorizations/info", http.MethodGet}

	opRefund          = operation{"refund", "refunds", http.MethodPost}
	opGetSaleInfo     = operation{"get_sale_info", "sales/info", http.MethodGet}
	opCheckSaleStatus = operation{"check_sale_status", "sales/status", http.MethodGet}

	opDirectDebitSale  = operation{"direct_debit_sale", "directdebits/sale", http.MethodPost}
	opSofortSale       = operation{"sofort_sale", "sofort/sale", http.MethodPost}
	opIdealSale        = operation{"ideal_sale", "ideal/sale", http.MethodPost}
	opIdealBankCodes   = operation{"ideal_bank_codes", "ideal/bankcodes", http.MethodGet}
	opBankTransferSale = operation{"bank_transfer_sale", "banktransfers/sale", http.MethodPost}

	opResaleBySale          = operation{"resale_by_sale", "resales/sale", http.MethodPost}
	opResaleByAuthorization = operation{"resale_by_authorization", "resales/authorization", http.MethodPost}

	opCheckCard3DSecure                    = operation{"check_card_3dsecure", "3DSecure/checkCard", http.MethodGet}
	opCheckCard3DSecureByToken             = operation{"check_card_3dsecure_by_token", "3DSecure/checkCardByToken", http.MethodGet}
	opSaleBy3DSecureAuthorization          = operation{"sale_by_3dsecure_authorization", "3DSecure/authSale", http.MethodPost}
	opAuthorizationBy3DSecureAuthorization = operation{"authorization_by_3dsecure_authorization", "3DSecure/authAuthorization", http.MethodPost}

	opApplePaySale          = operation{"applepay_sale", "applepay/sale", http.MethodPost}
	opApplePayAuthorization = operation{"applepay_authorization", "applepay/authorization", http.MethodPost}
)

// allOperations backs the table-completeness tests and tooling. Order
// follows the gateway documentation.
var allOperations = []operation{
	opCardSale,
	opCardSaleByToken,
	opCardAuthorization,
	opCardAuthorizationByToken,
	opCheckCard,
	opCheckCardByToken,
	opPayPalSale,
	opPayPalAuthorization,
	opPayPalStopRecurring,
	opCaptureAuthorization,
	opCloseAuthorization,
	opGetAuthorizationInfo,
	opRefund,
	opGetSaleInfo,
	opCheckSaleStatus,
	opDirectDebitSale,
	opSofortSale,
	opIdealSale,
	opIdealBankCodes,
	opBankTransferSale,
	opResaleBySale,
	opResaleByAuthorization,
	opCheckCard3DSecure,
	opCheckCard3DSecureByToken,
	opSaleBy3DSecureAuthorization,
	opAuthorizationBy3DSecureAuthorization,
	opApplePaySale,
	opApplePayAuthorization,
}

// CardSale performs a direct card sale.
func (c *Client) CardSale(ctx context.Context, params Params) (Response, error) {
	return c.call(ctx, opCardSale, params)
}

// CardSaleByToken performs a card sale using a previously issued card token.
func (c *Client) CardSaleByToken(ctx context.Context, params Params) (Response, error) {
	return c.call(ctx, opCardSaleByToken, params)
}

// CardAuthorization places an authorization hold on a card.
func (c *Client) CardAuthorization(ctx context.Context, params Params) (Response, error) {
	return c.call(ctx, opCardAuthorization, params)
}

// CardAuthorizationByToken places an authorization hold using a card token.
func (c *Client) CardAuthorizationByToken(ctx context.Context, params Params) (Response, error) {
	return c.call(ctx, opCardAuthorizationByToken, params)
}

// CheckCard verifies card validity without charging it.
func (c *Client) CheckCard(ctx context.Context, params Params) (Response, error) {
	return c.call(ctx, opCheckCard, params)
}

// CheckCardByToken verifies card validity by token.
func (c *Client) CheckCardByToken(ctx context.Context, params Params) (Response, error) {
	return c.call(ctx, opCheckCardByToken, params)
}

// PayPalSale performs a PayPal sale.
func (c *Client) PayPalSale(ctx context.Context, params Params) (Response, error) {
	return c.call(ctx, opPayPalSale, params)
}

// PayPalAuthorization creates a PayPal authorization.
func (c *Client) PayPalAuthorization(ctx context.Context, params Params) (Response, error) {
	return c.call(ctx, opPayPalAuthorization, params)
}

// PayPalStopRecurring cancels a recurring PayPal agreement.
func (c *Client) PayPalStopRecurring(ctx context.Context, params Params) (Response, error) {
	return c.call(ctx, opPayPalStopRecurring, params)
}

// CaptureAuthorization captures funds held by an earlier authorization.
func (c *Client) CaptureAuthorization(ctx context.Context, params Params) (Response, error) {
	return c.call(ctx, opCaptureAuthorization, params)
}

// CloseAuthorization releases an authorization hold without capturing.
func (c *Client) CloseAuthorization(ctx context.Context, params Params) (Response, error) {
	return c.call(ctx, opCloseAuthorization, params)
}

// GetAuthorizationInfo looks up an authorization.
func (c *Client) GetAuthorizationInfo(ctx context.Context, params Params) (Response, error) {
	return c.call(ctx, opGetAuthorizationInfo, params)
}

// Refund refunds a settled sale, fully or partially.
func (c *Client) Refund(ctx context.Context, params Params) (Response, error) {
	return c.call(ctx, opRefund, params)
}

// GetSaleInfo looks up a sale.
func (c *Client) GetSaleInfo(ctx context.Context, params Params) (Response, error) {
	return c.call(ctx, opGetSaleInfo, params)
}

// CheckSaleStatus reports the current status of a sale.
func (c *Client) CheckSaleStatus(ctx context.Context, params Params) (Response, error) {
	return c.call(ctx, opCheckSaleStatus, params)
}

// DirectDebitSale performs a SEPA direct debit sale.
func (c *Client) DirectDebitSale(ctx context.Context, params Params) (Response, error) {
	return c.call(ctx, opDirectDebitSale, params)
}

// SofortSale performs a SOFORT Banking sale.
func (c *Client) SofortSale(ctx context.Context, params Params) (Response, error) {
	return c.call(ctx, opSofortSale, params)
}

// IdealSale performs an iDEAL sale.
func (c *Client) IdealSale(ctx context.Context, params Params) (Response, error) {
	return c.call(ctx, opIdealSale, params)
}

// IdealBankCodes lists the iDEAL issuing banks. The operation takes no
// parameters; an empty JSON object goes on the wire as the body.
func (c *Client) IdealBankCodes(ctx context.Context) (Response, error) {
	return c.call(ctx, opIdealBankCodes, nil)
}

// BankTransferSale performs a bank transfer sale.
func (c *Client) BankTransferSale(ctx context.Context, params Params) (Response, error) {
	return c.call(ctx, opBankTransferSale, params)
}

// ResaleBySale charges a customer again based on an earlier sale id.
func (c *Client) ResaleBySale(ctx context.Context, params Params) (Response, error) {
	return c.call(ctx, opResaleBySale, params)
}

// ResaleByAuthorization charges a customer based on an earlier
// authorization id.
func (c *Client) ResaleByAuthorization(ctx context.Context, params Params) (Response, error) {
	return c.call(ctx, opResaleByAuthorization, params)
}

// CheckCard3DSecureEnrollment checks a card's 3-D Secure enrollment.
func (c *Client) CheckCard3DSecureEnrollment(ctx context.Context, params Params) (Response, error) {
	return c.call(ctx, opCheckCard3DSecure, params)
}

// CheckCard3DSecureEnrollmentByToken checks 3-D Secure enrollment by card
// token.
func (c *Client) CheckCard3DSecureEnrollmentByToken(ctx context.Context, params Params) (Response, error) {
	return c.call(ctx, opCheckCard3DSecureByToken, params)
}

// SaleBy3DSecureAuthorization completes a sale for a finished 3-D Secure
// authentication.
func (c *Client) SaleBy3DSecureAuthorization(ctx context.Context, params Params) (Response, error) {
	return c.call(ctx, opSaleBy3DSecureAuthorization, params)
}

// AuthorizationBy3DSecureAuthorization creates an authorization for a
// finished 3-D Secure authentication.
func (c *Client) AuthorizationBy3DSecureAuthorization(ctx context.Context, params Params) (Response, error) {
	return c.call(ctx, opAuthorizationBy3DSecureAuthorization, params)
}

// ApplePaySale performs an Apple Pay sale.
func (c *Client) ApplePaySale(ctx context.Context, params Params) (Response, error) {
	return c.call(ctx, opApplePaySale, params)
}

// ApplePayAuthorization creates an Apple Pay authorization.
func (c *Client) ApplePayAuthorization(ctx context.Context, params Params) (Response, error) {
	return c.call(ctx, opApplePayAuthorization, params)
}
