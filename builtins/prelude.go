//-----------------------------------------------------------------------------
// Copyright (c) 2024-present the Lithp contributors
//
// This file is part of lithp.
//
// lithp is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and
// obligations under this license.
//
// SPDX-License-Identifier: EUPL-1.2
//-----------------------------------------------------------------------------

package builtins

import "github.com/lithp-lang/lithp/eval"

// BindAll installs every builtin into env, grounded on
// sxbuiltins.BindAll's single-entry-point registration pattern.
func BindAll(env *eval.Environment) {
	BindArith(env)
	BindList(env)
	BindForms(env)
	BindCond(env)
	BindCompare(env)
	BindIO(env)
	BindEnv(env)
}
