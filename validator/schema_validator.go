package validator

import (
	"regexp"

	"safeher/model"

	"github.com/Oudwins/zog"
)

var digitsPattern = regexp.MustCompile(`^\d+$`)

var PhoneShape = zog.Shape{
	"PhoneNumber": zog.String().Required().Len(10),
}

var PinShape = zog.Shape{
	"Pin": zog.String().Required().Len(4),
}

var ConfirmPinShape = zog.Shape{
	"ConfirmPin": zog.String().Required(),
}

// PhoneDigitsTest rejects 10-character values that are not all digits.
func PhoneDigitsTest(dataPtr any, ctx zog.Ctx) bool {
	carrier, ok := dataPtr.(model.PhoneCarrier)
	if !ok {
		return true
	}

	if !digitsPattern.MatchString(carrier.GetPhoneNumber()) {
		ctx.AddIssue(&zog.ZogIssue{
			Path:    "phoneNumber",
			Message: "Phone number must contain digits only",
		})
		return false
	}
	return true
}

// PinMatchTest checks the confirm field mirrors the chosen PIN.
func PinMatchTest(dataPtr any, ctx zog.Ctx) bool {
	matcher, ok := dataPtr.(model.PinMatcher)
	if !ok {
		return true
	}

	if matcher.GetPin() != matcher.GetConfirm() {
		ctx.AddIssue(&zog.ZogIssue{
			Path:    "confirmPin",
			Message: "PIN and confirm PIN do not match",
		})
		return false
	}
	return true
}

func PinDigitsTest(dataPtr any, ctx zog.Ctx) bool {
	carrier, ok := dataPtr.(model.PinCarrier)
	if !ok {
		return true
	}

	if !digitsPattern.MatchString(carrier.GetPin()) {
		ctx.AddIssue(&zog.ZogIssue{
			Path:    "pin",
			Message: "PIN must contain digits only",
		})
		return false
	}
	return true
}
