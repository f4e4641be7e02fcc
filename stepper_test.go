package mlcs_test

import (
	"context"
	"testing"

	"github.com/pdrpinto/mlcs"
	"github.com/stretchr/testify/require"
)

func TestStepper(t *testing.T) {
	st, err := mlcs.NewStepper(context.Background(), []string{"ABC", "AC", "BAC"})
	require.NoError(t, err)
	defer st.Close()

	snap, err := st.Step()
	require.NoError(t, err)
	require.Equal(t, mlcs.RoundSnapshot{
		Round:     1,
		MaxF:      2,
		Threshold: 2,
		Active:    1,
		Frontier:  [][]int{{2, 1, 2}},
		Expanded:  1,
	}, snap)

	snap, err = st.Step()
	require.NoError(t, err)
	require.True(t, snap.Done)
	require.True(t, snap.Found)
	require.Equal(t, 2, snap.Round)
	require.Equal(t, "AC", snap.Subsequence)

	again, err := st.Step()
	require.NoError(t, err)
	require.Equal(t, snap, again)

	require.Equal(t, "AC", st.Result().Subsequence)
}

func TestStepperMatchesSearch(t *testing.T) {
	for _, tc := range scenarios {
		t.Run(tc.name, func(t *testing.T) {
			st, err := mlcs.NewStepper(context.Background(), tc.inputs, mlcs.WithWorkers(2))
			require.NoError(t, err)
			defer st.Close()

			var snap mlcs.RoundSnapshot
			for i := 0; !snap.Done; i++ {
				require.Less(t, i, 1000)
				snap, err = st.Step()
				require.NoError(t, err)
			}
			res, err := mlcs.Search(context.Background(), tc.inputs)
			require.NoError(t, err)
			require.Equal(t, res, st.Result())
			require.Equal(t, res.Subsequence, snap.Subsequence)
		})
	}
}

func TestStepperClose(t *testing.T) {
	st, err := mlcs.NewStepper(context.Background(), scenarios[6].inputs)
	require.NoError(t, err)

	_, err = st.Step()
	require.NoError(t, err)
	st.Close()

	snap, err := st.Step()
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 1, snap.Round)
	require.False(t, snap.Done)
}

func TestStepperRoundLimit(t *testing.T) {
	st, err := mlcs.NewStepper(context.Background(), scenarios[6].inputs, mlcs.WithMaxRounds(1))
	require.NoError(t, err)
	defer st.Close()

	_, err = st.Step()
	require.NoError(t, err)
	_, err = st.Step()
	require.ErrorIs(t, err, mlcs.ErrRoundLimit)
}

func TestNewStepperErrors(t *testing.T) {
	_, err := mlcs.NewStepper(context.Background(), nil)
	require.ErrorIs(t, err, mlcs.ErrNoStrings)
	_, err = mlcs.NewStepper(context.Background(), []string{"a"}, mlcs.WithWindow(-2))
	require.ErrorContains(t, err, "window -2")
}
