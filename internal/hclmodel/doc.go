// Package hclmodel loads case definitions written in HCL into the
// casemodel representation consumed by the compiler.
//
// A file holds one or more case blocks:
//
//	case "Case_1" {
//	  name = "A Case"
//
//	  plan_model "CasePlanModel_1" {
//	    human_task "HumanTask_1" {
//	      assignee = "${reviewer}"
//	    }
//
//	    plan_item "PI_HumanTask_1" {
//	      definition = "HumanTask_1"
//	    }
//	  }
//	}
//
// Attributes that hold expressions (conditions, listener expressions, task
// assignments) keep their source text. A quoted string is taken as written,
// so "${x > 1}" and "static" are both valid. A bare HCL expression such as
// `x > 1` is wrapped into "${x > 1}".
package hclmodel
