package util_test

import (
	"testing"

	"github.com/buildbarn/bb-capped-set/pkg/util"
	"github.com/stretchr/testify/require"
)

func TestDecimalExponentialBuckets(t *testing.T) {
	t.Run("PowersOfTen", func(t *testing.T) {
		// Unlike with prometheus.ExponentialBuckets, floating
		// point imprecision should not accumulate.
		require.Equal(t, []float64{
			1e-03, 1e-02, 1e-01, 1e+00, 1e+01, 1e+02, 1e+03,
		}, util.DecimalExponentialBuckets(-3, 6, 0))
	})

	t.Run("RequestDurations", func(t *testing.T) {
		// Boundaries used by HTTP request duration histograms.
		require.Equal(t, []float64{
			1e-04, 2.1544e-04, 4.6415e-04,
			1e-03, 2.1544e-03, 4.6415e-03,
			1e-02, 2.1544e-02, 4.6415e-02,
			1e-01, 2.1544e-01, 4.6415e-01,
			1e+00, 2.1544e+00, 4.6415e+00,
			1e+01,
		}, util.DecimalExponentialBuckets(-4, 5, 2))
	})
}
