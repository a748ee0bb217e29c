package shared

import (
	"reziro/config"
	"reziro/shared/constant"
	"reziro/shared/dto"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

// BuildCacheKey joins parts under the application name, e.g. "reziro:state:<user>".
func BuildCacheKey(cfg *config.Config, parts ...string) string {
	return strings.Join(append([]string{cfg.App.Name}, parts...), cacheKeySeparator)
}

func FilterByUser(userID string) dto.FilterGroup {
	return dto.And(dto.Eq(constant.FieldUserID, userID))
}
