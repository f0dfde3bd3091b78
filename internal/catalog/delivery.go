package catalog

import "strings"

const (
	MsgDeliveryNeedsPincode = "Enter a valid pincode to check delivery."
	MsgDeliveryEstimate     = "Estimated delivery: 3-5 business days."
)

// CheckDelivery returns the delivery estimate message for a pincode.
// It reports false when the pincode is blank.
func CheckDelivery(pincode string) (string, bool) {
	if strings.TrimSpace(pincode) == "" {
		return MsgDeliveryNeedsPincode, false
	}
	return MsgDeliveryEstimate, true
}
