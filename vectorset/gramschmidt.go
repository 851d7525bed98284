// SPDX-License-Identifier: MIT
// Package vectorset: sequential Gram–Schmidt orthogonalization.

package vectorset

import "github.com/katalvlaran/lvlinalg/vector"

// GramSchmidt orthogonalizes the set in input order: each vector is
// stripped of its projections onto the already accepted ones, and a
// residual whose norm falls below tolerance marks a dependent vector and is
// dropped. The result is therefore always an independent orthogonal family
// spanning the same subspace; with WithNormalize it is orthonormal.
//
// Unlike the QR factorizer — which must keep a slot per input column —
// dropping is the right policy here: the caller asked for a clean basis of
// the span, not for a factorization of fixed width.
func (s *Set) GramSchmidt(opts ...Option) ([]vector.Vector, error) {
	// an explicit WithEpsilon wins over the tolerance the Set was built with
	o := gatherOptions(opts...)
	if !o.epsSet {
		o.eps = s.eps
	}

	out := make([]vector.Vector, 0, len(s.vecs))
	for _, v := range s.vecs {
		u := v.Clone()
		for _, q := range out {
			d, err := u.Dot(q)
			if err != nil {
				return nil, err
			}
			qq, err := q.Dot(q)
			if err != nil {
				return nil, err
			}
			if err = u.SubInPlace(q.Scale(d / qq)); err != nil {
				return nil, err
			}
		}
		if u.Norm() < o.eps {
			continue
		}
		out = append(out, u)
	}

	if o.normalize {
		for i, u := range out {
			n, err := u.Normalized()
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
	}

	return out, nil
}
