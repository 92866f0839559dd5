package snowflake

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sony/sonyflake"
)

var _idGen = sonyflake.NewSonyflake(sonyflake.Settings{
	MachineID: func() (uint16, error) { return uint16(time.Now().UnixNano() % 1024), nil },
})

// Generate returns a short unique id usable as an HTML element id.
func Generate() string {
	if _idGen != nil {
		if id, err := _idGen.NextID(); err == nil {
			return "m" + strconv.FormatUint(id, 36)
		}
	}
	return fmt.Sprintf("m%d", time.Now().UnixNano())
}
