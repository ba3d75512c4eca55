package constvars

const (
	RedisKeyPrefix          = "bhz:"
	RedisKeyCityList        = RedisKeyPrefix + "cities"
	RedisKeySpecialtyList   = RedisKeyPrefix + "specialties"
	RedisKeySitemap         = RedisKeyPrefix + "sitemap"
	RedisKeyListingFormat   = RedisKeyPrefix + "listing:%s:%s"
	RedisKeyProfileFormat   = RedisKeyPrefix + "profile:%s:%s"
	RedisKeyCityPageFormat  = RedisKeyPrefix + "city-page:%s"
	RedisKeySitemapLockName = RedisKeyPrefix + "sitemap:lock"
)
