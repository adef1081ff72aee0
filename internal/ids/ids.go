// README: Human-readable identifier generators.
//
// The prefixed forms are visible to end users (job sheets, receipts),
// so they stay short; collision-improbability within a session is all
// the original product promised. Ledger and chat entries use UUIDs.
package ids

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"lodhi/internal/types"
)

const referralAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// specialtyPrefix encodes a technician's trade into their ID.
func specialtyPrefix(specialty types.ServiceCategory) string {
	switch specialty {
	case types.CategoryPlumbing:
		return "P"
	case types.CategoryElectrical:
		return "E"
	case types.CategoryACRepair:
		return "A"
	case types.CategoryGeyserRepair:
		return "G"
	case types.CategoryTVRepair:
		return "V"
	case types.CategoryCarpentry:
		return "C"
	case types.CategoryPainting:
		return "T"
	case types.CategoryApplianceRepair:
		return "R"
	default:
		return "X"
	}
}

func sixDigits() int {
	return 100000 + rand.IntN(900000)
}

// Technician returns e.g. "P-348112" for a plumber.
func Technician(specialty types.ServiceCategory) string {
	return fmt.Sprintf("%s-%d", specialtyPrefix(specialty), sixDigits())
}

func Job() string { return fmt.Sprintf("JOB-%d", sixDigits()) }

func Complaint() string { return fmt.Sprintf("CMPL-%d", sixDigits()) }

func Order() string { return fmt.Sprintf("ORD-%d", time.Now().UnixMilli()) }

func Delivery() string { return fmt.Sprintf("DEL-%d", time.Now().UnixMilli()) }

func PackersMovers() string { return fmt.Sprintf("PM-%d", time.Now().UnixMilli()) }

// ReferralCode returns e.g. "LODHI-7KQ2MZ".
func ReferralCode() string {
	var b strings.Builder
	for i := 0; i < 6; i++ {
		b.WriteByte(referralAlphabet[rand.IntN(len(referralAlphabet))])
	}
	return "LODHI-" + b.String()
}

// Entity returns a UUID for records that never surface to end users.
func Entity() string { return uuid.NewString() }
