package domain

import (
    "testing"

    "github.com/stretchr/testify/assert"
)

func TestCompositeScorePerfectSeller(t *testing.T) {
    score := CompositeScore(TrustSignals{
        AverageRating:  1,
        CompletionRate: 1,
        ResponseScore:  1,
        DisputeRate:    0,
        Verification:   1,
    })
    assert.Equal(t, 1.0, score)
}

func TestCompositeScoreNewSeller(t *testing.T) {
    // Neutral defaults, unverified, no disputes.
    score := CompositeScore(TrustSignals{
        AverageRating:  NeutralRating,
        CompletionRate: NeutralCompletion,
        ResponseScore:  NeutralResponse,
        DisputeRate:    0,
        Verification:   0,
    })
    assert.Equal(t, 0.55, score)
}

func TestCompositeScoreWeighting(t *testing.T) {
    score := CompositeScore(TrustSignals{
        AverageRating:  0.8,
        CompletionRate: 0.9,
        ResponseScore:  0.7,
        DisputeRate:    0.1,
        Verification:   1,
    })
    // 0.30*0.8 + 0.25*0.9 + 0.15*0.7 + 0.20*0.9 + 0.10*1 = 0.85
    assert.Equal(t, 0.85, score)
}

func TestCompositeScoreWorstCase(t *testing.T) {
    score := CompositeScore(TrustSignals{
        AverageRating:  0,
        CompletionRate: 0,
        ResponseScore:  0,
        DisputeRate:    1,
        Verification:   0,
    })
    assert.Equal(t, 0.0, score)
}

func TestCompositeScoreRoundsToTwoDecimals(t *testing.T) {
    score := CompositeScore(TrustSignals{
        AverageRating:  1.0 / 3.0,
        CompletionRate: 0,
        ResponseScore:  0,
        DisputeRate:    1,
        Verification:   0,
    })
    // 0.30 * 0.333... = 0.0999..., rounds to 0.10
    assert.Equal(t, 0.1, score)
}

func TestCompositeScoreClampsOutOfRangeSignals(t *testing.T) {
    high := CompositeScore(TrustSignals{
        AverageRating:  2,
        CompletionRate: 2,
        ResponseScore:  2,
        DisputeRate:    0,
        Verification:   2,
    })
    assert.Equal(t, 1.0, high)

    low := CompositeScore(TrustSignals{
        AverageRating:  -1,
        CompletionRate: -1,
        ResponseScore:  -1,
        DisputeRate:    2,
        Verification:   -1,
    })
    assert.Equal(t, 0.0, low)
}
