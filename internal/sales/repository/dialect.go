package repository

import (
	"fmt"

	"github.com/tair/sales-insights/internal/sales/domain"
	"github.com/tair/sales-insights/pkg/database"
)

// periodExpression returns the SQL rendering sale_date as the bucket label.
// Both dialects produce the same labels: 2006-01-02, 2006-W01, 2006-01, 2006.
func periodExpression(dialect string, bucket domain.Bucket) (string, error) {
	if !bucket.Valid() {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidBucket, bucket)
	}

	switch dialect {
	case database.DriverPostgres:
		return postgresPeriods[bucket], nil
	case database.DriverMySQL:
		return mysqlPeriods[bucket], nil
	default:
		return "", fmt.Errorf("revenue buckets are not supported on %q", dialect)
	}
}

var postgresPeriods = map[domain.Bucket]string{
	domain.BucketDay:   `to_char(sale_date AT TIME ZONE 'UTC', 'YYYY-MM-DD')`,
	domain.BucketWeek:  `to_char(sale_date AT TIME ZONE 'UTC', 'IYYY-"W"IW')`,
	domain.BucketMonth: `to_char(sale_date AT TIME ZONE 'UTC', 'YYYY-MM')`,
	domain.BucketYear:  `to_char(sale_date AT TIME ZONE 'UTC', 'YYYY')`,
}

var mysqlPeriods = map[domain.Bucket]string{
	domain.BucketDay:   `DATE_FORMAT(sale_date, '%Y-%m-%d')`,
	domain.BucketWeek:  `DATE_FORMAT(sale_date, '%x-W%v')`,
	domain.BucketMonth: `DATE_FORMAT(sale_date, '%Y-%m')`,
	domain.BucketYear:  `DATE_FORMAT(sale_date, '%Y')`,
}
