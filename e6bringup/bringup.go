// Package e6bringup describes the Dobot E6 visualization launch: the robot
// state publisher fed from the XACRO description, the joint state
// publishers and RViz.
package e6bringup

import (
	"github.com/edwinhayes/e6launch/launch"
)

const (
	DescriptionPackage = "dobot_e6_description"
	URDFFilename       = "dobot_e6.urdf.xacro"
	RvizFilename       = "dobot_e6_description.rviz"
	DefaultRobotName   = "dobot_e6"
)

var boolChoices = []string{"true", "false"}

// Arguments mirror the top-level xacro file arguments.
func Arguments() []launch.DeclaredArgument {
	return []launch.DeclaredArgument{
		{
			Name:        "robot_name",
			Default:     launch.Text(DefaultRobotName),
			Description: "Name of the robot",
		},
		{
			Name:        "add_world",
			Default:     launch.Text("true"),
			Choices:     boolChoices,
			Description: "Whether to add the world link",
		},
		{
			Name:        "prefix",
			Default:     launch.Text(""),
			Description: "Prefix for robot, joints and links",
		},
		{
			Name:        "use_gripper",
			Default:     launch.Text("false"),
			Choices:     boolChoices,
			Description: "Whether to use gripper",
		},
	}
}

// URDFModelPath is the default top-level xacro file.
func URDFModelPath() launch.Substitution {
	return launch.PathJoin{
		launch.FindPackageShare(DescriptionPackage),
		launch.Text("urdf"), launch.Text("robots"), launch.Text(URDFFilename),
	}
}

// RvizConfigPath is the default RViz configuration.
func RvizConfigPath() launch.Substitution {
	return launch.PathJoin{
		launch.FindPackageShare(DescriptionPackage),
		launch.Text("rviz"), launch.Text(RvizFilename),
	}
}

// RobotDescription runs xacro on the selected model.
func RobotDescription() launch.Substitution {
	return launch.Command{Parts: []launch.Substitution{
		launch.Text("xacro"), launch.Text(" "), launch.LaunchConfiguration("urdf_model"), launch.Text(" "),
		launch.Text("robot_name:="), launch.LaunchConfiguration("robot_name"), launch.Text(" "),
		launch.Text("prefix:="), launch.LaunchConfiguration("prefix"), launch.Text(" "),
		launch.Text("add_world:="), launch.LaunchConfiguration("add_world"), launch.Text(" "),
		launch.Text("use_gripper:="), launch.LaunchConfiguration("use_gripper"), launch.Text(" "),
	}}
}

// RobotStatePublisher returns the launch description.
func RobotStatePublisher() *launch.Description {
	ld := launch.NewDescription(Arguments()...)

	ld.AddArgument(launch.DeclaredArgument{
		Name:        "urdf_model",
		Default:     URDFModelPath(),
		Description: "Absolute path to robot urdf file",
	})
	ld.AddArgument(launch.DeclaredArgument{
		Name:        "rviz_config_file",
		Default:     RvizConfigPath(),
		Description: "Full path to the RVIZ config file to use",
	})
	// jsp is needed if joints are not fixed
	ld.AddArgument(launch.DeclaredArgument{
		Name:        "use_jsp",
		Default:     launch.Text("true"),
		Choices:     boolChoices,
		Description: "Enable the joint state publisher",
	})
	ld.AddArgument(launch.DeclaredArgument{
		Name:        "use_jsp_gui",
		Default:     launch.Text("true"),
		Choices:     boolChoices,
		Description: "Enable jsp gui",
	})
	ld.AddArgument(launch.DeclaredArgument{
		Name:        "use_rviz",
		Default:     launch.Text("true"),
		Choices:     boolChoices,
		Description: "Launch rviz",
	})

	ld.AddAction(&launch.Node{
		Package:    "robot_state_publisher",
		Executable: "robot_state_publisher",
		Name:       "robot_state_publisher",
		Output:     launch.OutputScreen,
		Parameters: []launch.Parameter{{
			Name:  "robot_description",
			Value: launch.ParameterValue{Value: RobotDescription(), Type: launch.TypeString},
		}},
	})
	ld.AddAction(&launch.Node{
		Package:    "joint_state_publisher",
		Executable: "joint_state_publisher",
		Name:       "joint_state_publisher",
		Condition:  launch.IfCondition{Expression: launch.LaunchConfiguration("use_jsp")},
	})
	ld.AddAction(&launch.Node{
		Package:    "joint_state_publisher_gui",
		Executable: "joint_state_publisher_gui",
		Name:       "joint_state_publisher_gui",
		Condition:  launch.IfCondition{Expression: launch.LaunchConfiguration("use_jsp_gui")},
	})
	ld.AddAction(&launch.Node{
		Package:    "rviz2",
		Executable: "rviz2",
		Output:     launch.OutputScreen,
		Arguments:  []launch.Substitution{launch.Text("-d"), launch.LaunchConfiguration("rviz_config_file")},
		Condition:  launch.IfCondition{Expression: launch.LaunchConfiguration("use_rviz")},
	})
	return ld
}
